package shift

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShiftRequest struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`

	Date      time.Time `gorm:"column:date;type:date;not null"`
	FromShift string    `gorm:"column:from_shift;type:varchar(20);not null"`
	ToShift   string    `gorm:"column:to_shift;type:varchar(20);not null"`
	Reason    string    `gorm:"column:reason;type:text"`

	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'pending';index"`
	DecidedBy  *uuid.UUID `gorm:"column:decided_by;type:uuid"`
	DecidedAt  *time.Time `gorm:"column:decided_at"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (ShiftRequest) TableName() string {
	return "shift_requests"
}
