package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/events"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll"
	payrollerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayslipRequested generates one payslip per event. Unknown users
// are committed and skipped so a stale event cannot wedge the partition.
func ConsumePayslipRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip")
	log.Info("payslip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip consumer stopped")
				return
			}
			log.Error("fetch payslip message failed", zap.Error(err))
			continue
		}

		var event events.PayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		artifact, err := payrollService.GeneratePayslip(ctx, event.UserID, event.Year, event.Month)
		if err != nil {
			if errors.Is(err, payrollerrors.ErrUserNotFound) {
				log.Warn("payslip event references missing user, skipping",
					zap.String("user_id", event.UserID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("generate payslip failed",
				zap.String("user_id", event.UserID),
				zap.Int("year", event.Year),
				zap.Int("month", event.Month),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip message failed", zap.Error(err))
			continue
		}

		log.Info("payslip generated from event",
			zap.String("user_id", event.UserID),
			zap.String("path", artifact.Path),
			zap.Int64("net_pay", artifact.Result.NetPay),
		)
	}
}
