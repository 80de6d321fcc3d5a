package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/notification"
	notificationerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/notification/errors"
	mock_notification "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/notification/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mock_notification.MockRepository, notification.Service) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_notification.NewMockRepository(ctrl)
	svc := notification.NewService(mockRepo)
	return mockRepo, svc
}

func TestNotify(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo, svc := setup(t)

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, n *notification.Notification) error {
				assert.Equal(t, userID, n.UserID)
				assert.Equal(t, "Your leave was approved", n.Message)
				assert.False(t, n.Read)
				return nil
			})

		err := svc.Notify(ctx, userID, "Your leave was approved")

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo, svc := setup(t)

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		err := svc.Notify(ctx, userID, "anything")

		assert.Error(t, err)
	})
}

func TestMine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockRepo, svc := setup(t)

	mockRepo.EXPECT().
		FindByUser(gomock.Any(), userID.String(), true).
		Return([]notification.Notification{
			{ID: uuid.New(), UserID: userID, Message: "Shift change approved"},
		}, nil)

	rows, err := svc.Mine(ctx, userID.String(), true)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Shift change approved", rows[0].Message)
	assert.False(t, rows[0].Read)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("marks an unread notification", func(t *testing.T) {
		mockRepo, svc := setup(t)
		n := &notification.Notification{ID: uuid.New(), UserID: userID, Message: "hello"}

		mockRepo.EXPECT().FindByID(gomock.Any(), n.ID.String()).Return(n, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, updated *notification.Notification) error {
				assert.True(t, updated.Read)
				assert.NotNil(t, updated.ReadAt)
				return nil
			})

		resp, err := svc.MarkRead(ctx, userID.String(), n.ID.String())

		assert.NoError(t, err)
		assert.True(t, resp.Read)
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		mockRepo, svc := setup(t)
		readAt := time.Now().UTC()
		n := &notification.Notification{ID: uuid.New(), UserID: userID, Message: "hello", Read: true, ReadAt: &readAt}

		mockRepo.EXPECT().FindByID(gomock.Any(), n.ID.String()).Return(n, nil)

		resp, err := svc.MarkRead(ctx, userID.String(), n.ID.String())

		assert.NoError(t, err)
		assert.True(t, resp.Read)
	})

	t.Run("someone else's notification", func(t *testing.T) {
		mockRepo, svc := setup(t)
		n := &notification.Notification{ID: uuid.New(), UserID: uuid.New(), Message: "not yours"}

		mockRepo.EXPECT().FindByID(gomock.Any(), n.ID.String()).Return(n, nil)

		_, err := svc.MarkRead(ctx, userID.String(), n.ID.String())

		assert.ErrorIs(t, err, notificationerrors.ErrNotRecipient)
	})
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockRepo, svc := setup(t)
	mockRepo.EXPECT().MarkAllRead(gomock.Any(), userID.String()).Return(int64(4), nil)

	count, err := svc.MarkAllRead(ctx, userID.String())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
