package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username string    `gorm:"column:username;type:varchar(100);not null;uniqueIndex"`
	FullName string    `gorm:"column:full_name;type:varchar(255)"`
	Email    string    `gorm:"column:email;type:text;uniqueIndex"`
	Password string    `gorm:"column:password;type:text;not null"`
	Role     string    `gorm:"column:role;type:varchar(20);not null;default:'employee'"`

	// Salary is the base monthly salary in whole rupees.
	Salary    int64      `gorm:"column:salary;type:bigint;not null;default:0"`
	ManagerID *uuid.UUID `gorm:"column:manager_id;type:uuid"`

	ForceChangePassword bool       `gorm:"column:force_change_password;not null;default:true"`
	LastLogin           *time.Time `gorm:"column:last_login"`

	// CreatedAt doubles as the date of joining for payroll purposes.
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Manager *ManagerRef `gorm:"foreignKey:ManagerID;references:ID"`
}

func (User) TableName() string {
	return "users"
}

// ManagerRef joins the minimal manager columns needed for display.
type ManagerRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"column:username"`
	FullName string    `gorm:"column:full_name"`
}

func (ManagerRef) TableName() string {
	return "users"
}
