package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, userID string) (AttendanceResponse, error)
	ClockOut(ctx context.Context, userID string) (AttendanceResponse, error)
	History(ctx context.Context, userID string, filter HistoryFilterRequest) ([]AttendanceResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) ClockIn(ctx context.Context, userID string) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	row := &Attendance{
		ID:        uuid.New(),
		UserID:    uuid.MustParse(userID),
		Date:      today,
		LoginTime: now,
		Status:    StatusInProgress,
	}

	if err := qtx.Create(ctx, row); err != nil {
		if isUniqueViolation(err) {
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
		}
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, userID string) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := qtx.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotClockedIn
		}
		return AttendanceResponse{}, err
	}
	if row.LogoutTime != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	row.LogoutTime = &now
	row.TotalWorkMinutes = int(now.Sub(row.LoginTime).Minutes())
	row.Status = StatusCompleted

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) History(ctx context.Context, userID string, filter HistoryFilterRequest) ([]AttendanceResponse, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := now

	if filter.From != "" {
		parsed, err := time.Parse("2006-01-02", filter.From)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDateFilter
		}
		start = parsed
	}
	if filter.To != "" {
		parsed, err := time.Parse("2006-01-02", filter.To)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDateFilter
		}
		end = parsed
	}

	rows, err := s.repo.FindByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	resp := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID.String(),
		UserID:           a.UserID.String(),
		Date:             a.Date.Format("2006-01-02"),
		LoginTime:        a.LoginTime.Format(time.RFC3339),
		TotalWorkMinutes: a.TotalWorkMinutes,
		Status:           a.Status,
	}
	if a.LogoutTime != nil {
		v := a.LogoutTime.Format(time.RFC3339)
		resp.LogoutTime = &v
	}
	return resp
}
