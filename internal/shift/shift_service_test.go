package shift_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/shift"
	shifterrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/shift/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeShiftRepository struct {
	createFn        func(ctx context.Context, sr *shift.ShiftRequest) error
	updateFn        func(ctx context.Context, sr *shift.ShiftRequest) error
	findByIDFn      func(ctx context.Context, id string) (*shift.ShiftRequest, error)
	findAllByUserFn func(ctx context.Context, userID string) ([]shift.ShiftRequest, error)
	findPendingFn   func(ctx context.Context) ([]shift.ShiftRequest, error)
}

func (f *fakeShiftRepository) WithTx(tx *sql.Tx) shift.Repository { return f }

func (f *fakeShiftRepository) Create(ctx context.Context, sr *shift.ShiftRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, sr)
	}
	return nil
}

func (f *fakeShiftRepository) Update(ctx context.Context, sr *shift.ShiftRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, sr)
	}
	return nil
}

func (f *fakeShiftRepository) FindByID(ctx context.Context, id string) (*shift.ShiftRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShiftRepository) FindAllByUser(ctx context.Context, userID string) ([]shift.ShiftRequest, error) {
	if f.findAllByUserFn != nil {
		return f.findAllByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeShiftRepository) FindPending(ctx context.Context) ([]shift.ShiftRequest, error) {
	if f.findPendingFn != nil {
		return f.findPendingFn(ctx)
	}
	return nil, nil
}

type fakeShiftNotifier struct {
	messages []string
	err      error
}

func (f *fakeShiftNotifier) Notify(ctx context.Context, userID uuid.UUID, message string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message)
	return nil
}

func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.ExpectBegin()
	mock.ExpectCommit()
	return db, mock
}

func TestShiftRequest(t *testing.T) {
	db, mock := newTxDB(t)

	var created *shift.ShiftRequest
	repo := &fakeShiftRepository{
		createFn: func(ctx context.Context, sr *shift.ShiftRequest) error {
			created = sr
			return nil
		},
	}
	svc := shift.NewService(db, repo)
	userID := uuid.NewString()

	resp, err := svc.Request(context.Background(), userID, shift.RequestShiftChange{
		Date:      "2025-09-15",
		FromShift: "morning",
		ToShift:   "night",
		Reason:    "covering a colleague",
	})

	assert.NoError(t, err)
	assert.Equal(t, shift.StatusPending, resp.Status)
	assert.Equal(t, "2025-09-15", resp.Date)
	assert.NotNil(t, created)
	assert.Equal(t, userID, created.UserID.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftRequestValidation(t *testing.T) {
	svc := shift.NewService(nil, &fakeShiftRepository{})

	_, err := svc.Request(context.Background(), uuid.NewString(), shift.RequestShiftChange{
		Date: "15-09-2025", FromShift: "morning", ToShift: "night",
	})
	assert.ErrorIs(t, err, shifterrors.ErrInvalidDateFormat)

	_, err = svc.Request(context.Background(), uuid.NewString(), shift.RequestShiftChange{
		Date: "2025-09-15", FromShift: "morning", ToShift: "morning",
	})
	assert.ErrorIs(t, err, shifterrors.ErrSameShift)
}

func TestShiftApprove(t *testing.T) {
	db, mock := newTxDB(t)

	userID := uuid.New()
	pending := &shift.ShiftRequest{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
		FromShift: "morning",
		ToShift:   "night",
		Status:    shift.StatusPending,
	}
	repo := &fakeShiftRepository{
		findByIDFn: func(ctx context.Context, id string) (*shift.ShiftRequest, error) {
			return pending, nil
		},
	}
	notifier := &fakeShiftNotifier{}
	svc := shift.NewServiceWithNotifier(db, repo, notifier)

	resp, err := svc.Approve(context.Background(), uuid.NewString(), pending.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, shift.StatusApproved, resp.Status)
	assert.NotNil(t, resp.DecidedAt)
	assert.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "approved")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftRejectNotifierFailureIsNotFatal(t *testing.T) {
	db, mock := newTxDB(t)

	pending := &shift.ShiftRequest{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Date:      time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
		FromShift: "evening",
		ToShift:   "morning",
		Status:    shift.StatusPending,
	}
	repo := &fakeShiftRepository{
		findByIDFn: func(ctx context.Context, id string) (*shift.ShiftRequest, error) {
			return pending, nil
		},
	}
	svc := shift.NewServiceWithNotifier(db, repo, &fakeShiftNotifier{err: errors.New("notification store down")})

	resp, err := svc.Reject(context.Background(), uuid.NewString(), pending.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, shift.StatusRejected, resp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShiftDecideGuards(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectRollback()
		svc := shift.NewService(db, &fakeShiftRepository{})

		_, err := svc.Approve(context.Background(), uuid.NewString(), uuid.NewString())
		assert.ErrorIs(t, err, shifterrors.ErrNotFound)
	})

	t.Run("already decided", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectRollback()
		decided := &shift.ShiftRequest{ID: uuid.New(), UserID: uuid.New(), Status: shift.StatusApproved}
		repo := &fakeShiftRepository{
			findByIDFn: func(ctx context.Context, id string) (*shift.ShiftRequest, error) {
				return decided, nil
			},
		}
		svc := shift.NewService(db, repo)

		_, err := svc.Reject(context.Background(), uuid.NewString(), decided.ID.String())
		assert.ErrorIs(t, err, shifterrors.ErrNotPending)
	})
}

func TestShiftMine(t *testing.T) {
	userID := uuid.New()
	repo := &fakeShiftRepository{
		findAllByUserFn: func(ctx context.Context, id string) ([]shift.ShiftRequest, error) {
			return []shift.ShiftRequest{
				{ID: uuid.New(), UserID: userID, Date: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), Status: shift.StatusPending},
			}, nil
		},
	}
	svc := shift.NewService(nil, repo)

	rows, err := svc.Mine(context.Background(), userID.String())

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "2025-09-15", rows[0].Date)
}
