package timesheet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timesheet covers one Monday-to-Sunday week for one user. Entries are
// editable while the sheet is in draft; submitting locks the week until a
// reopen request is approved.
type Timesheet struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_timesheet_user_week"`

	WeekStart time.Time `gorm:"column:week_start;type:date;not null;uniqueIndex:uq_timesheet_user_week"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;default:'draft';index"`

	SubmittedAt *time.Time `gorm:"column:submitted_at"`
	ApprovedBy  *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	ApprovedAt  *time.Time `gorm:"column:approved_at"`

	Entries []TimesheetEntry `gorm:"foreignKey:TimesheetID"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Timesheet) TableName() string {
	return "timesheets"
}

type TimesheetEntry struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TimesheetID uuid.UUID `gorm:"column:timesheet_id;type:uuid;not null;uniqueIndex:uq_entry_sheet_date_project"`

	Date    time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_entry_sheet_date_project"`
	Project string    `gorm:"column:project;type:varchar(255);not null;uniqueIndex:uq_entry_sheet_date_project"`
	Hours   float64   `gorm:"column:hours;type:numeric(4,2);not null"`
	Notes   string    `gorm:"column:notes;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (TimesheetEntry) TableName() string {
	return "timesheet_entries"
}

type ReopenRequest struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TimesheetID uuid.UUID `gorm:"column:timesheet_id;type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`

	Reason string `gorm:"column:reason;type:text;not null"`
	Status string `gorm:"column:status;type:varchar(20);not null;default:'pending';index"`

	DecidedBy *uuid.UUID `gorm:"column:decided_by;type:uuid"`
	DecidedAt *time.Time `gorm:"column:decided_at"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ReopenRequest) TableName() string {
	return "timesheet_reopen_requests"
}
