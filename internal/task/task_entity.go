package task

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string    `gorm:"column:title;type:varchar(255);not null"`
	Details    string    `gorm:"column:details;type:text"`
	AssigneeID uuid.UUID `gorm:"column:assignee_id;type:uuid;not null;index"`
	AssignedBy uuid.UUID `gorm:"column:assigned_by;type:uuid;not null"`

	DueDate *time.Time `gorm:"column:due_date;type:date"`
	Status  string     `gorm:"column:status;type:varchar(20);not null;default:'assigned';index"`

	StartedAt   *time.Time `gorm:"column:started_at"`
	CompletedAt *time.Time `gorm:"column:completed_at"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Task) TableName() string {
	return "tasks"
}
