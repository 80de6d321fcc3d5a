package notification

import (
	"context"
	"errors"
	"time"

	notificationerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/notification/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Notify(ctx context.Context, userID uuid.UUID, message string) error
	Mine(ctx context.Context, userID string, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, userID, id string) (NotificationResponse, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{repo: repo, logger: zap.L().Named("notification.service")}
}

// Notify writes an in-app notification. Callers treat failures as
// non-fatal, so this never wraps its own transaction.
func (s *service) Notify(ctx context.Context, userID uuid.UUID, message string) error {
	n := &Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Message: message,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.logger.Debug("notification created",
		zap.String("id", n.ID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}

func (s *service) Mine(ctx context.Context, userID string, unreadOnly bool) ([]NotificationResponse, error) {
	rows, err := s.repo.FindByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, err
	}
	resp := make([]NotificationResponse, len(rows))
	for i, n := range rows {
		resp[i] = mapToResponse(n)
	}
	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, userID, id string) (NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationResponse{}, notificationerrors.ErrNotFound
		}
		return NotificationResponse{}, err
	}
	if n.UserID.String() != userID {
		return NotificationResponse{}, notificationerrors.ErrNotRecipient
	}

	if !n.Read {
		now := time.Now().UTC()
		n.Read = true
		n.ReadAt = &now
		if err := s.repo.Update(ctx, n); err != nil {
			return NotificationResponse{}, err
		}
	}
	return mapToResponse(*n), nil
}

func (s *service) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		v := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	return resp
}
