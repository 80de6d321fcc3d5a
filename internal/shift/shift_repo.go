package shift

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, sr *ShiftRequest) error
	Update(ctx context.Context, sr *ShiftRequest) error
	FindByID(ctx context.Context, id string) (*ShiftRequest, error)
	FindAllByUser(ctx context.Context, userID string) ([]ShiftRequest, error)
	FindPending(ctx context.Context) ([]ShiftRequest, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, sr *ShiftRequest) error {
	return r.db.WithContext(ctx).Create(sr).Error
}

func (r *repository) Update(ctx context.Context, sr *ShiftRequest) error {
	return r.db.WithContext(ctx).Save(sr).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*ShiftRequest, error) {
	var sr ShiftRequest
	err := r.db.WithContext(ctx).First(&sr, "id = ?", id).Error
	return &sr, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]ShiftRequest, error) {
	var rows []ShiftRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindPending(ctx context.Context) ([]ShiftRequest, error) {
	var rows []ShiftRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusPending).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
