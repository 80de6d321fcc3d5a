package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Leave struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_leaves_user_dates"`

	LeaveType string `gorm:"column:leave_type;type:varchar(30);not null;default:'other'"`
	Reason    string `gorm:"column:reason;type:text;not null"`

	FromDate time.Time `gorm:"column:from_date;type:date;not null;index:idx_leaves_user_dates"`
	ToDate   time.Time `gorm:"column:to_date;type:date;not null;index:idx_leaves_user_dates"`

	// LeaveDays is the inclusive day count of [FromDate, ToDate].
	LeaveDays int `gorm:"column:leave_days;type:int;not null;default:1"`

	Status          string     `gorm:"column:status;type:varchar(20);not null;default:'pending';index"`
	ApprovedBy      *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	ApprovedAt      *time.Time `gorm:"column:approved_at"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Leave) TableName() string {
	return "leaves"
}
