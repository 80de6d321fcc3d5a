package weekendwork_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/weekendwork"
	weekendworkerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/weekendwork/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeWeekendRepository struct {
	createFn        func(ctx context.Context, w *weekendwork.WeekendWork) error
	updateFn        func(ctx context.Context, w *weekendwork.WeekendWork) error
	findByIDFn      func(ctx context.Context, id string) (*weekendwork.WeekendWork, error)
	findAllByUserFn func(ctx context.Context, userID string) ([]weekendwork.WeekendWork, error)
	findSubmittedFn func(ctx context.Context) ([]weekendwork.WeekendWork, error)
}

func (f *fakeWeekendRepository) WithTx(tx *sql.Tx) weekendwork.Repository { return f }

func (f *fakeWeekendRepository) Create(ctx context.Context, w *weekendwork.WeekendWork) error {
	if f.createFn != nil {
		return f.createFn(ctx, w)
	}
	return nil
}

func (f *fakeWeekendRepository) Update(ctx context.Context, w *weekendwork.WeekendWork) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, w)
	}
	return nil
}

func (f *fakeWeekendRepository) FindByID(ctx context.Context, id string) (*weekendwork.WeekendWork, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWeekendRepository) FindAllByUser(ctx context.Context, userID string) ([]weekendwork.WeekendWork, error) {
	if f.findAllByUserFn != nil {
		return f.findAllByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeWeekendRepository) FindSubmitted(ctx context.Context) ([]weekendwork.WeekendWork, error) {
	if f.findSubmittedFn != nil {
		return f.findSubmittedFn(ctx)
	}
	return nil, nil
}

func (f *fakeWeekendRepository) FindApprovedInRange(ctx context.Context, userID string, start, end time.Time) ([]weekendwork.WeekendWork, error) {
	return nil, nil
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

func TestSubmitWeekendWork(t *testing.T) {
	db := newTxDB(t)
	userID := uuid.New()

	var created *weekendwork.WeekendWork
	repo := &fakeWeekendRepository{
		createFn: func(ctx context.Context, w *weekendwork.WeekendWork) error {
			created = w
			return nil
		},
	}
	svc := weekendwork.NewService(db, repo)

	// 2025-09-06 is a Saturday.
	resp, err := svc.Submit(context.Background(), userID.String(), weekendwork.SubmitRequest{
		Date:   "2025-09-06",
		Reason: "release support",
	})

	assert.NoError(t, err)
	assert.Equal(t, weekendwork.StatusSubmitted, resp.Status)
	assert.Equal(t, "2025-09-06", resp.Date)
	assert.NotNil(t, created)
	assert.Equal(t, userID, created.UserID)
}

func TestSubmitWeekendWorkValidation(t *testing.T) {
	svc := weekendwork.NewService(nil, &fakeWeekendRepository{})
	userID := uuid.NewString()

	_, err := svc.Submit(context.Background(), userID, weekendwork.SubmitRequest{
		Date: "06-09-2025", Reason: "x",
	})
	assert.ErrorIs(t, err, weekendworkerrors.ErrInvalidDateFormat)

	// 2025-09-08 is a Monday.
	_, err = svc.Submit(context.Background(), userID, weekendwork.SubmitRequest{
		Date: "2025-09-08", Reason: "x",
	})
	assert.ErrorIs(t, err, weekendworkerrors.ErrNotAWeekend)
}

func TestSubmitWeekendWorkDuplicateDate(t *testing.T) {
	db := newRollbackDB(t)
	repo := &fakeWeekendRepository{
		createFn: func(ctx context.Context, w *weekendwork.WeekendWork) error {
			return &pgconn.PgError{Code: "23505"}
		},
	}
	svc := weekendwork.NewService(db, repo)

	_, err := svc.Submit(context.Background(), uuid.NewString(), weekendwork.SubmitRequest{
		Date: "2025-09-06", Reason: "x",
	})

	assert.ErrorIs(t, err, weekendworkerrors.ErrDuplicateDate)
}

func TestApproveWeekendWork(t *testing.T) {
	db := newTxDB(t)
	submitted := &weekendwork.WeekendWork{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Date:   time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC),
		Status: weekendwork.StatusSubmitted,
	}
	repo := &fakeWeekendRepository{
		findByIDFn: func(ctx context.Context, id string) (*weekendwork.WeekendWork, error) {
			return submitted, nil
		},
	}
	svc := weekendwork.NewService(db, repo)

	resp, err := svc.Approve(context.Background(), uuid.NewString(), submitted.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, weekendwork.StatusApproved, resp.Status)
	assert.NotNil(t, resp.ApprovedBy)
}

func TestDecideWeekendWorkGuards(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db := newRollbackDB(t)
		svc := weekendwork.NewService(db, &fakeWeekendRepository{})

		_, err := svc.Reject(context.Background(), uuid.NewString(), uuid.NewString())
		assert.ErrorIs(t, err, weekendworkerrors.ErrNotFound)
	})

	t.Run("already decided", func(t *testing.T) {
		db := newRollbackDB(t)
		decided := &weekendwork.WeekendWork{ID: uuid.New(), UserID: uuid.New(), Status: weekendwork.StatusApproved}
		repo := &fakeWeekendRepository{
			findByIDFn: func(ctx context.Context, id string) (*weekendwork.WeekendWork, error) {
				return decided, nil
			},
		}
		svc := weekendwork.NewService(db, repo)

		_, err := svc.Approve(context.Background(), uuid.NewString(), decided.ID.String())
		assert.ErrorIs(t, err, weekendworkerrors.ErrNotSubmitted)
	})
}
