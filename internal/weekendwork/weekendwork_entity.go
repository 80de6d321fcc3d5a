package weekendwork

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeekendWork struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_weekend_user_date"`

	Date   time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_weekend_user_date"`
	Reason string    `gorm:"column:reason;type:text;not null"`

	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'submitted';index"`
	ApprovedBy *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	ApprovedAt *time.Time `gorm:"column:approved_at"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (WeekendWork) TableName() string {
	return "weekend_works"
}
