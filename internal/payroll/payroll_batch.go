package payroll

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// PayslipMailer delivers a generated slip; the notification package
// provides the SMTP implementation.
type PayslipMailer interface {
	SendPayslip(ctx context.Context, to, subject, body, filename string, pdf []byte) error
}

// Runner executes the scheduled monthly batch: compute, render, store and
// mail one payslip per user, with per-user failure isolation.
type Runner struct {
	service Service
	users   UserSource
	mailer  PayslipMailer
	logger  *zap.Logger
}

func NewRunner(service Service, users UserSource, mailer PayslipMailer) *Runner {
	return &Runner{
		service: service,
		users:   users,
		mailer:  mailer,
		logger:  zap.L().Named("payroll.batch"),
	}
}

// RunMonthly targets the previous calendar month and processes every user
// sequentially. One user's failure never aborts the rest.
func (r *Runner) RunMonthly(ctx context.Context) (RunSummary, error) {
	year, month := TargetMonth(time.Now().UTC())
	return r.Run(ctx, year, month)
}

func (r *Runner) Run(ctx context.Context, year, month int) (RunSummary, error) {
	users, err := r.users.FindAll(ctx)
	if err != nil {
		return RunSummary{}, err
	}

	summary := RunSummary{Year: year, Month: month}
	r.logger.Info("payroll batch started",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("users", len(users)),
	)

	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		artifact, err := r.service.GeneratePayslip(ctx, u.ID.String(), year, month)
		if err != nil {
			summary.Failed++
			r.logger.Error("payslip generation failed",
				zap.String("user_id", u.ID.String()),
				zap.String("username", u.Username),
				zap.Error(err),
			)
			continue
		}
		summary.Succeeded++

		if u.Email == "" || r.mailer == nil {
			continue
		}
		subject := fmt.Sprintf("Payslip for %s %d", time.Month(month), year)
		body := fmt.Sprintf("Dear %s,\n\nPlease find your payslip for %s %d attached.\n\nRegards,\nHR",
			u.FullName, time.Month(month), year)
		if err := r.mailer.SendPayslip(ctx, u.Email, subject, body, artifact.Filename, artifact.PDF); err != nil {
			// Mail failure is logged, never fatal to the batch.
			r.logger.Warn("payslip mail failed",
				zap.String("user_id", u.ID.String()),
				zap.String("email", u.Email),
				zap.Error(err),
			)
		}
	}

	r.logger.Info("payroll batch finished",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}
