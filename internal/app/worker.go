package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/messaging/kafka"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/messaging/kafka/producer"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/notification"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RunWorker relays outbox events to Kafka and fires the monthly payroll
// batch at 09:00 on the 1st.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	runner := buildRunner(sqlDB, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	schedule := os.Getenv("PAYROLL_CRON")
	if schedule == "" {
		schedule = "0 9 1 * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		summary, err := runner.RunMonthly(ctx)
		if err != nil {
			logger.Error("monthly payroll batch failed", zap.Error(err))
			return
		}
		logger.Info("monthly payroll batch done",
			zap.Int("year", summary.Year),
			zap.Int("month", summary.Month),
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("failed", summary.Failed),
		)
	}); err != nil {
		return err
	}
	c.Start()
	defer c.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

func buildMailer() notification.Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}
	return notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     host,
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	})
}
