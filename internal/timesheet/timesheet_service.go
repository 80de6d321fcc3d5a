package timesheet

import (
	"context"
	"database/sql"
	"errors"
	"time"

	timesheeterrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/timesheet/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"

	ReopenPending  = "pending"
	ReopenApproved = "approved"
	ReopenRejected = "rejected"
)

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	UpsertEntry(ctx context.Context, userID string, req UpsertEntryRequest) (TimesheetResponse, error)
	Week(ctx context.Context, userID, week string) (TimesheetResponse, error)
	Submit(ctx context.Context, userID string, req SubmitRequest) (TimesheetResponse, error)
	Submitted(ctx context.Context) ([]TimesheetResponse, error)
	Approve(ctx context.Context, actorID, id string) (TimesheetResponse, error)
	RequestReopen(ctx context.Context, userID, timesheetID string, req ReopenRequestBody) (ReopenResponse, error)
	PendingReopens(ctx context.Context) ([]ReopenResponse, error)
	ApproveReopen(ctx context.Context, actorID, id string) (ReopenResponse, error)
	RejectReopen(ctx context.Context, actorID, id string) (ReopenResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, logger: zap.L().Named("timesheet.service")}
}

// weekStartOf normalizes any date to the Monday of its week.
func weekStartOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, time.UTC)
}

func (s *service) UpsertEntry(ctx context.Context, userID string, req UpsertEntryRequest) (TimesheetResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidDateFormat
	}
	weekStart := weekStartOf(date)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ts, err := qtx.FindSheetByUserAndWeek(ctx, userID, weekStart)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ts = &Timesheet{
			ID:        uuid.New(),
			UserID:    uuid.MustParse(userID),
			WeekStart: weekStart,
			Status:    StatusDraft,
		}
		if err := qtx.CreateSheet(ctx, ts); err != nil {
			return TimesheetResponse{}, err
		}
	case err != nil:
		return TimesheetResponse{}, err
	}

	if ts.Status != StatusDraft {
		return TimesheetResponse{}, timesheeterrors.ErrWeekLocked
	}

	entry := &TimesheetEntry{
		ID:          uuid.New(),
		TimesheetID: ts.ID,
		Date:        date,
		Project:     req.Project,
		Hours:       req.Hours,
		Notes:       req.Notes,
	}
	if err := qtx.UpsertEntry(ctx, entry); err != nil {
		return TimesheetResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TimesheetResponse{}, err
	}

	refreshed, err := s.repo.FindSheetByID(ctx, ts.ID.String())
	if err != nil {
		return TimesheetResponse{}, err
	}
	return mapSheet(*refreshed), nil
}

func (s *service) Week(ctx context.Context, userID, week string) (TimesheetResponse, error) {
	var anchor time.Time
	if week == "" {
		anchor = time.Now().UTC()
	} else {
		parsed, err := time.Parse("2006-01-02", week)
		if err != nil {
			return TimesheetResponse{}, timesheeterrors.ErrInvalidDateFormat
		}
		anchor = parsed
	}

	ts, err := s.repo.FindSheetByUserAndWeek(ctx, userID, weekStartOf(anchor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimesheetResponse{}, timesheeterrors.ErrNotFound
		}
		return TimesheetResponse{}, err
	}
	return mapSheet(*ts), nil
}

func (s *service) Submit(ctx context.Context, userID string, req SubmitRequest) (TimesheetResponse, error) {
	anchor, err := time.Parse("2006-01-02", req.Week)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ts, err := qtx.FindSheetByUserAndWeek(ctx, userID, weekStartOf(anchor))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimesheetResponse{}, timesheeterrors.ErrNotFound
		}
		return TimesheetResponse{}, err
	}
	if ts.Status != StatusDraft {
		return TimesheetResponse{}, timesheeterrors.ErrWeekLocked
	}
	if len(ts.Entries) == 0 {
		return TimesheetResponse{}, timesheeterrors.ErrEmptySheet
	}

	now := time.Now().UTC()
	ts.Status = StatusSubmitted
	ts.SubmittedAt = &now

	if err := qtx.UpdateSheet(ctx, ts); err != nil {
		return TimesheetResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TimesheetResponse{}, err
	}

	s.logger.Info("timesheet submitted",
		zap.String("id", ts.ID.String()),
		zap.String("user_id", userID),
		zap.String("week_start", ts.WeekStart.Format("2006-01-02")),
	)
	return mapSheet(*ts), nil
}

func (s *service) Submitted(ctx context.Context) ([]TimesheetResponse, error) {
	rows, err := s.repo.FindSubmitted(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]TimesheetResponse, len(rows))
	for i, ts := range rows {
		resp[i] = mapSheet(ts)
	}
	return resp, nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (TimesheetResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ts, err := qtx.FindSheetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimesheetResponse{}, timesheeterrors.ErrNotFound
		}
		return TimesheetResponse{}, err
	}
	if ts.Status != StatusSubmitted {
		return TimesheetResponse{}, timesheeterrors.ErrNotSubmitted
	}

	now := time.Now().UTC()
	actorUUID := uuid.MustParse(actorID)
	ts.Status = StatusApproved
	ts.ApprovedBy = &actorUUID
	ts.ApprovedAt = &now

	if err := qtx.UpdateSheet(ctx, ts); err != nil {
		return TimesheetResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TimesheetResponse{}, err
	}
	return mapSheet(*ts), nil
}

func (s *service) RequestReopen(ctx context.Context, userID, timesheetID string, req ReopenRequestBody) (ReopenResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReopenResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ts, err := qtx.FindSheetByID(ctx, timesheetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReopenResponse{}, timesheeterrors.ErrNotFound
		}
		return ReopenResponse{}, err
	}
	if ts.UserID.String() != userID {
		return ReopenResponse{}, timesheeterrors.ErrNotOwner
	}
	if ts.Status == StatusDraft {
		return ReopenResponse{}, timesheeterrors.ErrNotLocked
	}

	open, err := qtx.HasPendingReopen(ctx, timesheetID)
	if err != nil {
		return ReopenResponse{}, err
	}
	if open {
		return ReopenResponse{}, timesheeterrors.ErrReopenAlreadyOpen
	}

	rr := &ReopenRequest{
		ID:          uuid.New(),
		TimesheetID: ts.ID,
		UserID:      ts.UserID,
		Reason:      req.Reason,
		Status:      ReopenPending,
	}
	if err := qtx.CreateReopen(ctx, rr); err != nil {
		return ReopenResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ReopenResponse{}, err
	}
	return mapReopen(*rr), nil
}

func (s *service) PendingReopens(ctx context.Context) ([]ReopenResponse, error) {
	rows, err := s.repo.FindPendingReopens(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]ReopenResponse, len(rows))
	for i, rr := range rows {
		resp[i] = mapReopen(rr)
	}
	return resp, nil
}

func (s *service) ApproveReopen(ctx context.Context, actorID, id string) (ReopenResponse, error) {
	return s.decideReopen(ctx, actorID, id, ReopenApproved)
}

func (s *service) RejectReopen(ctx context.Context, actorID, id string) (ReopenResponse, error) {
	return s.decideReopen(ctx, actorID, id, ReopenRejected)
}

func (s *service) decideReopen(ctx context.Context, actorID, id, status string) (ReopenResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReopenResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rr, err := qtx.FindReopenByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReopenResponse{}, timesheeterrors.ErrReopenNotFound
		}
		return ReopenResponse{}, err
	}
	if rr.Status != ReopenPending {
		return ReopenResponse{}, timesheeterrors.ErrReopenNotPending
	}

	now := time.Now().UTC()
	actorUUID := uuid.MustParse(actorID)
	rr.Status = status
	rr.DecidedBy = &actorUUID
	rr.DecidedAt = &now

	if err := qtx.UpdateReopen(ctx, rr); err != nil {
		return ReopenResponse{}, err
	}

	// An approved reopen unlocks the sheet for editing again.
	if status == ReopenApproved {
		ts, err := qtx.FindSheetByID(ctx, rr.TimesheetID.String())
		if err != nil {
			return ReopenResponse{}, err
		}
		ts.Status = StatusDraft
		ts.SubmittedAt = nil
		ts.ApprovedBy = nil
		ts.ApprovedAt = nil
		if err := qtx.UpdateSheet(ctx, ts); err != nil {
			return ReopenResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ReopenResponse{}, err
	}

	s.logger.Info("reopen request decided",
		zap.String("id", rr.ID.String()),
		zap.String("status", status),
	)
	return mapReopen(*rr), nil
}

func mapSheet(ts Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:        ts.ID.String(),
		UserID:    ts.UserID.String(),
		WeekStart: ts.WeekStart.Format("2006-01-02"),
		Status:    ts.Status,
		Entries:   make([]EntryResponse, len(ts.Entries)),
	}
	for i, e := range ts.Entries {
		resp.Entries[i] = EntryResponse{
			ID:      e.ID.String(),
			Date:    e.Date.Format("2006-01-02"),
			Project: e.Project,
			Hours:   e.Hours,
			Notes:   e.Notes,
		}
		resp.TotalHours += e.Hours
	}
	if ts.SubmittedAt != nil {
		v := ts.SubmittedAt.Format(time.RFC3339)
		resp.SubmittedAt = &v
	}
	if ts.ApprovedBy != nil {
		v := ts.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if ts.ApprovedAt != nil {
		v := ts.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func mapReopen(rr ReopenRequest) ReopenResponse {
	resp := ReopenResponse{
		ID:          rr.ID.String(),
		TimesheetID: rr.TimesheetID.String(),
		UserID:      rr.UserID.String(),
		Reason:      rr.Reason,
		Status:      rr.Status,
	}
	if rr.DecidedBy != nil {
		v := rr.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if rr.DecidedAt != nil {
		v := rr.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
