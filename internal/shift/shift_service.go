package shift

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	shifterrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Notifier is a local interface; the notification service satisfies it.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, message string) error
}

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Request(ctx context.Context, userID string, req RequestShiftChange) (ShiftResponse, error)
	Mine(ctx context.Context, userID string) ([]ShiftResponse, error)
	Pending(ctx context.Context) ([]ShiftResponse, error)
	Approve(ctx context.Context, actorID, id string) (ShiftResponse, error)
	Reject(ctx context.Context, actorID, id string) (ShiftResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	notifier Notifier
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, logger: zap.L().Named("shift.service")}
}

func NewServiceWithNotifier(db *sql.DB, repo Repository, notifier Notifier) Service {
	return &service{db: db, repo: repo, notifier: notifier, logger: zap.L().Named("shift.service")}
}

func (s *service) Request(ctx context.Context, userID string, req RequestShiftChange) (ShiftResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidDateFormat
	}
	if req.FromShift == req.ToShift {
		return ShiftResponse{}, shifterrors.ErrSameShift
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	sr := &ShiftRequest{
		ID:        uuid.New(),
		UserID:    uuid.MustParse(userID),
		Date:      date,
		FromShift: req.FromShift,
		ToShift:   req.ToShift,
		Reason:    req.Reason,
		Status:    StatusPending,
	}

	if err := s.repo.WithTx(tx).Create(ctx, sr); err != nil {
		return ShiftResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}

	s.logger.Info("shift change requested",
		zap.String("id", sr.ID.String()),
		zap.String("user_id", userID),
	)
	return mapToResponse(*sr), nil
}

func (s *service) Mine(ctx context.Context, userID string) ([]ShiftResponse, error) {
	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Pending(ctx context.Context) ([]ShiftResponse, error) {
	rows, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (ShiftResponse, error) {
	return s.decide(ctx, actorID, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, actorID, id string) (ShiftResponse, error) {
	return s.decide(ctx, actorID, id, StatusRejected)
}

func (s *service) decide(ctx context.Context, actorID, id, status string) (ShiftResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sr, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrNotFound
		}
		return ShiftResponse{}, err
	}
	if sr.Status != StatusPending {
		return ShiftResponse{}, shifterrors.ErrNotPending
	}

	now := time.Now().UTC()
	actorUUID := uuid.MustParse(actorID)
	sr.Status = status
	sr.DecidedBy = &actorUUID
	sr.DecidedAt = &now

	if err := qtx.Update(ctx, sr); err != nil {
		return ShiftResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}

	if s.notifier != nil {
		msg := fmt.Sprintf("Your shift change for %s was %s", sr.Date.Format("2006-01-02"), status)
		if err := s.notifier.Notify(ctx, sr.UserID, msg); err != nil {
			// Notification failure never rolls back a decision.
			s.logger.Warn("shift decision notification failed", zap.Error(err))
		}
	}
	return mapToResponse(*sr), nil
}

func mapToResponse(sr ShiftRequest) ShiftResponse {
	resp := ShiftResponse{
		ID:        sr.ID.String(),
		UserID:    sr.UserID.String(),
		Date:      sr.Date.Format("2006-01-02"),
		FromShift: sr.FromShift,
		ToShift:   sr.ToShift,
		Reason:    sr.Reason,
		Status:    sr.Status,
	}
	if sr.DecidedBy != nil {
		v := sr.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if sr.DecidedAt != nil {
		v := sr.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(rows []ShiftRequest) []ShiftResponse {
	resp := make([]ShiftResponse, len(rows))
	for i, sr := range rows {
		resp[i] = mapToResponse(sr)
	}
	return resp
}
