package producer

import (
	"context"
	"time"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ProcessOutboxEvents polls the outbox table and relays due events to
// Kafka until the context is cancelled.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := relayPending(ctx, repo, writer, log); err != nil {
				log.Error("relay outbox events failed", zap.Error(err))
			}
			reportBacklog(ctx, repo, log)
		}
	}
}

// reportBacklog logs how many events are still waiting so a stuck or
// slow relay shows up in the logs before the table grows unbounded.
func reportBacklog(ctx context.Context, repo kafka.OutboxRepository, logger *zap.Logger) {
	backlog, err := repo.Backlog(ctx)
	if err != nil {
		logger.Error("read outbox backlog failed", zap.Error(err))
		return
	}
	if backlog > 0 {
		logger.Warn("outbox backlog pending", zap.Int64("pending", backlog))
	}
}

func relayPending(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
) error {
	events, err := repo.ClaimPending(ctx, 50)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	logger.Info("relaying outbox events", zap.Int("count", len(events)))

	for _, event := range events {
		msg := kafkago.Message{
			Topic: event.Topic,
			Key:   []byte(event.AggregateID),
			Value: event.Payload,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(event.EventType)},
				{Key: "request_id", Value: []byte(event.RequestID)},
			},
		}

		if err := writer.WriteMessages(ctx, msg); err != nil {
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}
