package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attendance struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_attendance_user_date"`

	// Date is the midnight-UTC day the row belongs to; one row per user
	// per day.
	Date       time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_user_date"`
	LoginTime  time.Time  `gorm:"column:login_time;type:timestamptz;not null"`
	LogoutTime *time.Time `gorm:"column:logout_time;type:timestamptz"`

	TotalWorkMinutes int `gorm:"column:total_work_minutes;not null;default:0"`

	Status    string         `gorm:"column:status;type:varchar(20);not null;default:'in_progress'"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
