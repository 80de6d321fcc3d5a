package weekendwork

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=weekendwork_repo.go -destination=mock/weekendwork_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, w *WeekendWork) error
	Update(ctx context.Context, w *WeekendWork) error
	FindByID(ctx context.Context, id string) (*WeekendWork, error)
	FindAllByUser(ctx context.Context, userID string) ([]WeekendWork, error)
	FindSubmitted(ctx context.Context) ([]WeekendWork, error)
	FindApprovedInRange(ctx context.Context, userID string, start, end time.Time) ([]WeekendWork, error)
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

func (r *repository) Create(ctx context.Context, w *WeekendWork) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *repository) Update(ctx context.Context, w *WeekendWork) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*WeekendWork, error) {
	var w WeekendWork
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	return &w, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]WeekendWork, error) {
	var rows []WeekendWork
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindSubmitted(ctx context.Context) ([]WeekendWork, error) {
	var rows []WeekendWork
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusSubmitted).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindApprovedInRange(ctx context.Context, userID string, start, end time.Time) ([]WeekendWork, error) {
	var rows []WeekendWork
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status = ?", StatusApproved).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
