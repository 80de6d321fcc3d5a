package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	leaveerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/leave/errors"

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

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Request(ctx context.Context, userID string, req RequestLeaveRequest) (LeaveResponse, error)
	MyLeaves(ctx context.Context, userID string) ([]LeaveResponse, error)
	Pending(ctx context.Context) ([]LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id string, req RejectLeaveRequest) (LeaveResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	notifier Notifier
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, logger: zap.L().Named("leave.service")}
}

func NewServiceWithNotifier(db *sql.DB, repo Repository, notifier Notifier) Service {
	return &service{db: db, repo: repo, notifier: notifier, logger: zap.L().Named("leave.service")}
}

func (s *service) Request(ctx context.Context, userID string, req RequestLeaveRequest) (LeaveResponse, error) {
	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	toDate, err := parseDate(req.ToDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if fromDate.After(toDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("request leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlapping(ctx, userID, fromDate, toDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("leave overlap detected",
			zap.String("user_id", userID),
			zap.String("from_date", req.FromDate),
			zap.String("to_date", req.ToDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	leaveType := req.LeaveType
	if leaveType == "" {
		leaveType = "other"
	}

	l := &Leave{
		ID:        uuid.New(),
		UserID:    uuid.MustParse(userID),
		LeaveType: leaveType,
		Reason:    req.Reason,
		FromDate:  fromDate,
		ToDate:    toDate,
		LeaveDays: int(toDate.Sub(fromDate).Hours()/24) + 1,
		Status:    StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("request leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave requested",
		zap.String("leave_id", l.ID.String()),
		zap.String("user_id", userID),
		zap.Int("leave_days", l.LeaveDays),
	)
	return mapToResponse(*l), nil
}

func (s *service) MyLeaves(ctx context.Context, userID string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Pending(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	return s.decide(ctx, actorID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, actorID, id string, req RejectLeaveRequest) (LeaveResponse, error) {
	return s.decide(ctx, actorID, id, StatusRejected, &req.Reason)
}

func (s *service) decide(ctx context.Context, actorID, id, status string, rejectionReason *string) (LeaveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	now := time.Now().UTC()
	actorUUID := uuid.MustParse(actorID)
	l.Status = status
	l.ApprovedBy = &actorUUID
	l.ApprovedAt = &now
	l.RejectionReason = rejectionReason

	if err := qtx.Update(ctx, l); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	if s.notifier != nil {
		msg := fmt.Sprintf("Your leave from %s to %s was %s",
			l.FromDate.Format("2006-01-02"), l.ToDate.Format("2006-01-02"), status)
		if err := s.notifier.Notify(ctx, l.UserID, msg); err != nil {
			// Notification failure never rolls back a decision.
			s.logger.Warn("leave decision notification failed", zap.Error(err))
		}
	}

	s.logger.Info("leave decided",
		zap.String("leave_id", l.ID.String()),
		zap.String("status", status),
		zap.String("actor_id", actorID),
	)
	return mapToResponse(*l), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		UserID:          l.UserID.String(),
		LeaveType:       l.LeaveType,
		Reason:          l.Reason,
		FromDate:        l.FromDate.Format("2006-01-02"),
		ToDate:          l.ToDate.Format("2006-01-02"),
		LeaveDays:       l.LeaveDays,
		Status:          l.Status,
		RejectionReason: l.RejectionReason,
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
