package weekendwork

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	weekendworkerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/weekendwork/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// Notifier is a local interface; the notification service satisfies it.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, message string) error
}

//go:generate mockgen -source=weekendwork_service.go -destination=mock/weekendwork_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, userID string, req SubmitRequest) (WeekendWorkResponse, error)
	Mine(ctx context.Context, userID string) ([]WeekendWorkResponse, error)
	Submitted(ctx context.Context) ([]WeekendWorkResponse, error)
	Approve(ctx context.Context, actorID, id string) (WeekendWorkResponse, error)
	Reject(ctx context.Context, actorID, id string) (WeekendWorkResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	notifier Notifier
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, logger: zap.L().Named("weekendwork.service")}
}

func NewServiceWithNotifier(db *sql.DB, repo Repository, notifier Notifier) Service {
	return &service{db: db, repo: repo, notifier: notifier, logger: zap.L().Named("weekendwork.service")}
}

func (s *service) Submit(ctx context.Context, userID string, req SubmitRequest) (WeekendWorkResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return WeekendWorkResponse{}, weekendworkerrors.ErrInvalidDateFormat
	}
	if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
		return WeekendWorkResponse{}, weekendworkerrors.ErrNotAWeekend
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WeekendWorkResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w := &WeekendWork{
		ID:     uuid.New(),
		UserID: uuid.MustParse(userID),
		Date:   date,
		Reason: req.Reason,
		Status: StatusSubmitted,
	}

	if err := qtx.Create(ctx, w); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return WeekendWorkResponse{}, weekendworkerrors.ErrDuplicateDate
		}
		return WeekendWorkResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return WeekendWorkResponse{}, err
	}

	s.logger.Info("weekend work submitted",
		zap.String("id", w.ID.String()),
		zap.String("user_id", userID),
		zap.String("date", req.Date),
	)
	return mapToResponse(*w), nil
}

func (s *service) Mine(ctx context.Context, userID string) ([]WeekendWorkResponse, error) {
	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Submitted(ctx context.Context) ([]WeekendWorkResponse, error) {
	rows, err := s.repo.FindSubmitted(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (WeekendWorkResponse, error) {
	return s.decide(ctx, actorID, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, actorID, id string) (WeekendWorkResponse, error) {
	return s.decide(ctx, actorID, id, StatusRejected)
}

func (s *service) decide(ctx context.Context, actorID, id, status string) (WeekendWorkResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WeekendWorkResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WeekendWorkResponse{}, weekendworkerrors.ErrNotFound
		}
		return WeekendWorkResponse{}, err
	}
	if w.Status != StatusSubmitted {
		return WeekendWorkResponse{}, weekendworkerrors.ErrNotSubmitted
	}

	now := time.Now().UTC()
	actorUUID := uuid.MustParse(actorID)
	w.Status = status
	w.ApprovedBy = &actorUUID
	w.ApprovedAt = &now

	if err := qtx.Update(ctx, w); err != nil {
		return WeekendWorkResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return WeekendWorkResponse{}, err
	}

	if s.notifier != nil {
		msg := fmt.Sprintf("Your weekend work on %s was %s", w.Date.Format("2006-01-02"), status)
		if err := s.notifier.Notify(ctx, w.UserID, msg); err != nil {
			s.logger.Warn("weekend work notification failed", zap.Error(err))
		}
	}

	return mapToResponse(*w), nil
}

func mapToResponse(w WeekendWork) WeekendWorkResponse {
	resp := WeekendWorkResponse{
		ID:     w.ID.String(),
		UserID: w.UserID.String(),
		Date:   w.Date.Format("2006-01-02"),
		Reason: w.Reason,
		Status: w.Status,
	}
	if w.ApprovedBy != nil {
		v := w.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if w.ApprovedAt != nil {
		v := w.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func mapToListResponse(rows []WeekendWork) []WeekendWorkResponse {
	resp := make([]WeekendWorkResponse, len(rows))
	for i, w := range rows {
		resp[i] = mapToResponse(w)
	}
	return resp
}
