package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/user"

	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	generateFn func(ctx context.Context, userID string, year, month int) (payroll.PayslipArtifact, error)
}

func (f *fakePayrollService) Calculate(ctx context.Context, userID string, year, month int) (payroll.PayrollResult, error) {
	return payroll.PayrollResult{}, nil
}

func (f *fakePayrollService) GeneratePayslip(ctx context.Context, userID string, year, month int) (payroll.PayslipArtifact, error) {
	if f.generateFn != nil {
		return f.generateFn(ctx, userID, year, month)
	}
	return payroll.PayslipArtifact{Filename: "slip.pdf", PDF: []byte("%PDF-1.4")}, nil
}

func (f *fakePayrollService) QueueRun(ctx context.Context, actorID string, year, month int) (payroll.RunResponse, error) {
	return payroll.RunResponse{}, nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendPayslip(ctx context.Context, to, subject, body, filename string, pdf []byte) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func batchUsers() []user.User {
	joined := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	a := testUser(20000, joined)
	b := testUser(15000, joined)
	b.Username = "ravi"
	b.Email = "ravi@example.com"
	return []user.User{*a, *b}
}

func TestRunnerIsolatesPerUserFailure(t *testing.T) {
	members := batchUsers()
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, userID string, year, month int) (payroll.PayslipArtifact, error) {
			if userID == members[0].ID.String() {
				return payroll.PayslipArtifact{}, errors.New("render blew up")
			}
			return payroll.PayslipArtifact{Filename: "ravi_payslip_2025-08.pdf", PDF: []byte("%PDF-1.4")}, nil
		},
	}
	mailer := &fakeMailer{}
	users := &fakeUserSource{
		findAllFn: func(ctx context.Context) ([]user.User, error) { return members, nil },
	}

	summary, err := payroll.NewRunner(svc, users, mailer).Run(context.Background(), 2025, 8)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, []string{"ravi@example.com"}, mailer.sent)
}

func TestRunnerMailFailureIsNotFatal(t *testing.T) {
	members := batchUsers()
	users := &fakeUserSource{
		findAllFn: func(ctx context.Context) ([]user.User, error) { return members, nil },
	}
	mailer := &fakeMailer{err: errors.New("smtp refused")}

	summary, err := payroll.NewRunner(&fakePayrollService{}, users, mailer).Run(context.Background(), 2025, 8)

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
}

func TestRunnerWithoutMailer(t *testing.T) {
	members := batchUsers()
	users := &fakeUserSource{
		findAllFn: func(ctx context.Context) ([]user.User, error) { return members, nil },
	}

	summary, err := payroll.NewRunner(&fakePayrollService{}, users, nil).Run(context.Background(), 2025, 8)

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Succeeded)
}

func TestRunnerStopsOnCancelledContext(t *testing.T) {
	members := batchUsers()
	users := &fakeUserSource{
		findAllFn: func(ctx context.Context) ([]user.User, error) { return members, nil },
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := payroll.NewRunner(&fakePayrollService{}, users, nil).Run(ctx, 2025, 8)

	assert.ErrorIs(t, err, context.Canceled)
}
