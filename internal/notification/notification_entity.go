package notification

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`

	Message string     `gorm:"column:message;type:text;not null"`
	Read    bool       `gorm:"column:read;not null;default:false;index"`
	ReadAt  *time.Time `gorm:"column:read_at"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
