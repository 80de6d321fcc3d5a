package task

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id string) (*Task, error)
	FindByAssignee(ctx context.Context, assigneeID string) ([]Task, error)
	FindAssignedBy(ctx context.Context, assignerID string) ([]Task, error)
	FindUserIDByUsername(ctx context.Context, username string) (uuid.UUID, error)
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

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindByAssignee(ctx context.Context, assigneeID string) ([]Task, error) {
	var rows []Task
	err := r.db.WithContext(ctx).
		Where("assignee_id = ?", assigneeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAssignedBy(ctx context.Context, assignerID string) ([]Task, error) {
	var rows []Task
	err := r.db.WithContext(ctx).
		Where("assigned_by = ?", assignerID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindUserIDByUsername(ctx context.Context, username string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id").
		Where("username = ? AND deleted_at IS NULL", username).
		Take(&id).Error
	return id, err
}
