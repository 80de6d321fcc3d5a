package timesheet

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateSheet(ctx context.Context, ts *Timesheet) error
	UpdateSheet(ctx context.Context, ts *Timesheet) error
	FindSheetByID(ctx context.Context, id string) (*Timesheet, error)
	FindSheetByUserAndWeek(ctx context.Context, userID string, weekStart time.Time) (*Timesheet, error)
	FindSubmitted(ctx context.Context) ([]Timesheet, error)

	UpsertEntry(ctx context.Context, entry *TimesheetEntry) error

	CreateReopen(ctx context.Context, rr *ReopenRequest) error
	UpdateReopen(ctx context.Context, rr *ReopenRequest) error
	FindReopenByID(ctx context.Context, id string) (*ReopenRequest, error)
	FindPendingReopens(ctx context.Context) ([]ReopenRequest, error)
	HasPendingReopen(ctx context.Context, timesheetID string) (bool, error)
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

func (r *repository) CreateSheet(ctx context.Context, ts *Timesheet) error {
	return r.db.WithContext(ctx).Omit("Entries").Create(ts).Error
}

func (r *repository) UpdateSheet(ctx context.Context, ts *Timesheet) error {
	return r.db.WithContext(ctx).Omit("Entries").Save(ts).Error
}

func (r *repository) FindSheetByID(ctx context.Context, id string) (*Timesheet, error) {
	var ts Timesheet
	err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC, project ASC") }).
		First(&ts, "id = ?", id).Error
	return &ts, err
}

func (r *repository) FindSheetByUserAndWeek(ctx context.Context, userID string, weekStart time.Time) (*Timesheet, error) {
	var ts Timesheet
	err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC, project ASC") }).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		First(&ts).Error
	return &ts, err
}

func (r *repository) FindSubmitted(ctx context.Context) ([]Timesheet, error) {
	var rows []Timesheet
	err := r.db.WithContext(ctx).
		Preload("Entries").
		Where("status = ?", StatusSubmitted).
		Order("submitted_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpsertEntry(ctx context.Context, entry *TimesheetEntry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "timesheet_id"}, {Name: "date"}, {Name: "project"}},
			DoUpdates: clause.AssignmentColumns([]string{"hours", "notes", "updated_at"}),
		}).
		Create(entry).Error
}

func (r *repository) CreateReopen(ctx context.Context, rr *ReopenRequest) error {
	return r.db.WithContext(ctx).Create(rr).Error
}

func (r *repository) UpdateReopen(ctx context.Context, rr *ReopenRequest) error {
	return r.db.WithContext(ctx).Save(rr).Error
}

func (r *repository) FindReopenByID(ctx context.Context, id string) (*ReopenRequest, error) {
	var rr ReopenRequest
	err := r.db.WithContext(ctx).First(&rr, "id = ?", id).Error
	return &rr, err
}

func (r *repository) FindPendingReopens(ctx context.Context) ([]ReopenRequest, error) {
	var rows []ReopenRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", ReopenPending).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) HasPendingReopen(ctx context.Context, timesheetID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReopenRequest{}).
		Where("timesheet_id = ? AND status = ?", timesheetID, ReopenPending).
		Count(&count).Error
	return count > 0, err
}
