package payroll

import (
	"time"

	"github.com/google/uuid"
)

// PayslipRecord is the stored outcome of one user-month computation,
// keyed uniquely so re-runs overwrite instead of duplicating.
type PayslipRecord struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_payslip_user_period"`

	Year  int `gorm:"column:year;not null;uniqueIndex:uq_payslip_user_period"`
	Month int `gorm:"column:month;not null;uniqueIndex:uq_payslip_user_period"`

	Salary           int64 `gorm:"column:salary;type:bigint;not null"`
	DeductionRate    int64 `gorm:"column:deduction_rate;type:bigint;not null"`
	TotalWorkingDays int   `gorm:"column:total_working_days;not null"`
	PresentDays      int   `gorm:"column:present_days;not null"`
	LeaveDays        int   `gorm:"column:leave_days;not null"`
	DeductibleLeaves int   `gorm:"column:deductible_leaves;not null"`
	AbsentDays       int   `gorm:"column:absent_days;not null"`
	WeekendDays      int   `gorm:"column:weekend_days;not null"`
	LeaveDeduction   int64 `gorm:"column:leave_deduction;type:bigint;not null"`
	AbsentDeduction  int64 `gorm:"column:absent_deduction;type:bigint;not null"`
	WeekendBonus     int64 `gorm:"column:weekend_bonus;type:bigint;not null"`
	NetPay           int64 `gorm:"column:net_pay;type:bigint;not null"`

	Filename string `gorm:"column:filename;type:varchar(255)"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PayslipRecord) TableName() string {
	return "payslips"
}
