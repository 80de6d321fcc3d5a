package task

import (
	"context"
	"database/sql"
	"errors"
	"time"

	taskerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, assignerID string, req AssignTaskRequest) (TaskResponse, error)
	Mine(ctx context.Context, userID string) ([]TaskResponse, error)
	AssignedBy(ctx context.Context, assignerID string) ([]TaskResponse, error)
	UpdateStatus(ctx context.Context, userID, id string, req UpdateStatusRequest) (TaskResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, logger: zap.L().Named("task.service")}
}

func (s *service) Assign(ctx context.Context, assignerID string, req AssignTaskRequest) (TaskResponse, error) {
	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return TaskResponse{}, taskerrors.ErrInvalidDateFormat
		}
		dueDate = &parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	assigneeID, err := qtx.FindUserIDByUsername(ctx, req.AssigneeUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrAssigneeNotFound
		}
		return TaskResponse{}, err
	}

	t := &Task{
		ID:         uuid.New(),
		Title:      req.Title,
		Details:    req.Details,
		AssigneeID: assigneeID,
		AssignedBy: uuid.MustParse(assignerID),
		DueDate:    dueDate,
		Status:     StatusAssigned,
	}
	if err := qtx.Create(ctx, t); err != nil {
		return TaskResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TaskResponse{}, err
	}

	s.logger.Info("task assigned",
		zap.String("id", t.ID.String()),
		zap.String("assignee_id", assigneeID.String()),
	)
	return mapToResponse(*t), nil
}

func (s *service) Mine(ctx context.Context, userID string) ([]TaskResponse, error) {
	rows, err := s.repo.FindByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) AssignedBy(ctx context.Context, assignerID string) ([]TaskResponse, error) {
	rows, err := s.repo.FindAssignedBy(ctx, assignerID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// UpdateStatus enforces the assigned -> in_progress -> completed ladder.
func (s *service) UpdateStatus(ctx context.Context, userID, id string, req UpdateStatusRequest) (TaskResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrNotFound
		}
		return TaskResponse{}, err
	}
	if t.AssigneeID.String() != userID {
		return TaskResponse{}, taskerrors.ErrNotAssignee
	}

	now := time.Now().UTC()
	switch {
	case t.Status == StatusAssigned && req.Status == StatusInProgress:
		t.Status = StatusInProgress
		t.StartedAt = &now
	case t.Status == StatusInProgress && req.Status == StatusCompleted:
		t.Status = StatusCompleted
		t.CompletedAt = &now
	default:
		return TaskResponse{}, taskerrors.ErrInvalidTransition
	}

	if err := qtx.Update(ctx, t); err != nil {
		return TaskResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TaskResponse{}, err
	}
	return mapToResponse(*t), nil
}

func mapToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:         t.ID.String(),
		Title:      t.Title,
		Details:    t.Details,
		AssigneeID: t.AssigneeID.String(),
		AssignedBy: t.AssignedBy.String(),
		Status:     t.Status,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		v := t.DueDate.Format("2006-01-02")
		resp.DueDate = &v
	}
	if t.StartedAt != nil {
		v := t.StartedAt.Format(time.RFC3339)
		resp.StartedAt = &v
	}
	if t.CompletedAt != nil {
		v := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}
	return resp
}

func mapToListResponse(rows []Task) []TaskResponse {
	resp := make([]TaskResponse, len(rows))
	for i, t := range rows {
		resp[i] = mapToResponse(t)
	}
	return resp
}
