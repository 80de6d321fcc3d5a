package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/leave"
	leaveerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createFn                  func(ctx context.Context, l *leave.Leave) error
	updateFn                  func(ctx context.Context, l *leave.Leave) error
	findByIDFn                func(ctx context.Context, id string) (*leave.Leave, error)
	findAllByUserFn           func(ctx context.Context, userID string) ([]leave.Leave, error)
	findPendingFn             func(ctx context.Context) ([]leave.Leave, error)
	hasOverlappingFn          func(ctx context.Context, userID string, fromDate, toDate time.Time) (bool, error)
	findApprovedOverlappingFn func(ctx context.Context, userID string, start, end time.Time) ([]leave.Leave, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository { return f }

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) FindAllByUser(ctx context.Context, userID string) ([]leave.Leave, error) {
	if f.findAllByUserFn != nil {
		return f.findAllByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindPending(ctx context.Context) ([]leave.Leave, error) {
	if f.findPendingFn != nil {
		return f.findPendingFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) HasOverlapping(ctx context.Context, userID string, fromDate, toDate time.Time) (bool, error) {
	if f.hasOverlappingFn != nil {
		return f.hasOverlappingFn(ctx, userID, fromDate, toDate)
	}
	return false, nil
}

func (f *fakeLeaveRepository) FindApprovedOverlapping(ctx context.Context, userID string, start, end time.Time) ([]leave.Leave, error) {
	if f.findApprovedOverlappingFn != nil {
		return f.findApprovedOverlappingFn(ctx, userID, start, end)
	}
	return nil, nil
}

type fakeLeaveNotifier struct {
	messages []string
	err      error
}

func (f *fakeLeaveNotifier) Notify(ctx context.Context, userID uuid.UUID, message string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message)
	return nil
}

func newTxDB(t *testing.T) *sql.DB {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.ExpectBegin()
	mock.ExpectCommit()
	return db
}

func newRollbackDB(t *testing.T) *sql.DB {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.ExpectBegin()
	mock.ExpectRollback()
	return db
}

func TestRequestLeave(t *testing.T) {
	db := newTxDB(t)
	userID := uuid.New()

	var created *leave.Leave
	repo := &fakeLeaveRepository{
		createFn: func(ctx context.Context, l *leave.Leave) error {
			created = l
			return nil
		},
	}
	svc := leave.NewService(db, repo)

	resp, err := svc.Request(context.Background(), userID.String(), leave.RequestLeaveRequest{
		LeaveType: "casual",
		Reason:    "family function",
		FromDate:  "2025-09-08",
		ToDate:    "2025-09-10",
	})

	assert.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, 3, resp.LeaveDays)
	assert.NotNil(t, created)
	assert.Equal(t, userID, created.UserID)
}

func TestRequestLeaveValidation(t *testing.T) {
	svc := leave.NewService(nil, &fakeLeaveRepository{})
	userID := uuid.NewString()

	_, err := svc.Request(context.Background(), userID, leave.RequestLeaveRequest{
		Reason: "x", FromDate: "08-09-2025", ToDate: "2025-09-10",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)

	_, err = svc.Request(context.Background(), userID, leave.RequestLeaveRequest{
		Reason: "x", FromDate: "2025-09-10", ToDate: "2025-09-08",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
}

func TestRequestLeaveOverlap(t *testing.T) {
	db := newRollbackDB(t)
	repo := &fakeLeaveRepository{
		hasOverlappingFn: func(ctx context.Context, userID string, fromDate, toDate time.Time) (bool, error) {
			return true, nil
		},
	}
	svc := leave.NewService(db, repo)

	_, err := svc.Request(context.Background(), uuid.NewString(), leave.RequestLeaveRequest{
		Reason: "x", FromDate: "2025-09-08", ToDate: "2025-09-10",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
}

func TestApproveLeaveNotifies(t *testing.T) {
	db := newTxDB(t)
	userID := uuid.New()
	pending := &leave.Leave{
		ID:       uuid.New(),
		UserID:   userID,
		FromDate: time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		Status:   leave.StatusPending,
	}
	repo := &fakeLeaveRepository{
		findByIDFn: func(ctx context.Context, id string) (*leave.Leave, error) {
			return pending, nil
		},
	}
	notifier := &fakeLeaveNotifier{}
	svc := leave.NewServiceWithNotifier(db, repo, notifier)

	resp, err := svc.Approve(context.Background(), uuid.NewString(), pending.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)
	assert.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "2025-09-08")
	assert.Contains(t, notifier.messages[0], "approved")
}

func TestRejectLeaveKeepsReason(t *testing.T) {
	db := newTxDB(t)
	pending := &leave.Leave{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		FromDate: time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		Status:   leave.StatusPending,
	}
	repo := &fakeLeaveRepository{
		findByIDFn: func(ctx context.Context, id string) (*leave.Leave, error) {
			return pending, nil
		},
	}
	svc := leave.NewService(db, repo)

	resp, err := svc.Reject(context.Background(), uuid.NewString(), pending.ID.String(), leave.RejectLeaveRequest{Reason: "short staffed"})

	assert.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, resp.Status)
	assert.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "short staffed", *resp.RejectionReason)
}

func TestDecideLeaveGuards(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db := newRollbackDB(t)
		svc := leave.NewService(db, &fakeLeaveRepository{})

		_, err := svc.Approve(context.Background(), uuid.NewString(), uuid.NewString())
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("already decided", func(t *testing.T) {
		db := newRollbackDB(t)
		decided := &leave.Leave{ID: uuid.New(), UserID: uuid.New(), Status: leave.StatusApproved}
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.Leave, error) {
				return decided, nil
			},
		}
		svc := leave.NewService(db, repo)

		_, err := svc.Approve(context.Background(), uuid.NewString(), decided.ID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrNotPending)
	})
}

func TestApproveLeaveNotifierFailureIsNotFatal(t *testing.T) {
	db := newTxDB(t)
	pending := &leave.Leave{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		FromDate: time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		Status:   leave.StatusPending,
	}
	repo := &fakeLeaveRepository{
		findByIDFn: func(ctx context.Context, id string) (*leave.Leave, error) {
			return pending, nil
		},
	}
	svc := leave.NewServiceWithNotifier(db, repo, &fakeLeaveNotifier{err: errors.New("store down")})

	resp, err := svc.Approve(context.Background(), uuid.NewString(), pending.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)
}
