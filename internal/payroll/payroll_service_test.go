package payroll_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/attendance"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/events"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/leave"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/messaging/kafka"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll"
	payrollerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll/errors"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/user"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/weekendwork"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeUserSource struct {
	findByIDFn func(ctx context.Context, id string) (*user.User, error)
	findAllFn  func(ctx context.Context) ([]user.User, error)
}

func (f *fakeUserSource) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserSource) FindAll(ctx context.Context) ([]user.User, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

type fakeAttendanceSource struct {
	rows []attendance.Attendance
	err  error
}

func (f *fakeAttendanceSource) FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.Attendance, error) {
	return f.rows, f.err
}

type fakeLeaveSource struct {
	rows []leave.Leave
	err  error
}

func (f *fakeLeaveSource) FindApprovedOverlapping(ctx context.Context, userID string, start, end time.Time) ([]leave.Leave, error) {
	return f.rows, f.err
}

type fakeWeekendSource struct {
	rows []weekendwork.WeekendWork
	err  error
}

func (f *fakeWeekendSource) FindApprovedInRange(ctx context.Context, userID string, start, end time.Time) ([]weekendwork.WeekendWork, error) {
	return f.rows, f.err
}

type fakeSlipRepo struct {
	saved  []*payroll.PayslipRecord
	saveFn func(ctx context.Context, rec *payroll.PayslipRecord) error
}

func (f *fakeSlipRepo) SaveRecord(ctx context.Context, rec *payroll.PayslipRecord) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, rec)
	}
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakeSlipRepo) FindRecord(ctx context.Context, userID string, year, month int) (*payroll.PayslipRecord, error) {
	return nil, gorm.ErrRecordNotFound
}

type fakeOutboxRepository struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ClaimPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func (f *fakeOutboxRepository) Backlog(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeSink struct {
	writes map[string][]byte
	err    error
}

func (f *fakeSink) Write(filename string, pdf []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.writes == nil {
		f.writes = map[string][]byte{}
	}
	f.writes[filename] = pdf
	return "payslips/" + filename, nil
}

func testUser(salary int64, joined time.Time) *user.User {
	return &user.User{
		ID:        uuid.New(),
		Username:  "asha",
		FullName:  "Asha Verma",
		Email:     "asha@example.com",
		Salary:    salary,
		CreatedAt: joined,
	}
}

func attendanceRows(n int) []attendance.Attendance {
	return make([]attendance.Attendance, n)
}

func newCalcService(
	u *user.User,
	att []attendance.Attendance,
	leaves []leave.Leave,
	weekends []weekendwork.WeekendWork,
) payroll.Service {
	users := &fakeUserSource{
		findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
			if u != nil && id == u.ID.String() {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	return payroll.NewService(
		nil,
		users,
		&fakeAttendanceSource{rows: att},
		&fakeLeaveSource{rows: leaves},
		&fakeWeekendSource{rows: weekends},
		&fakeSlipRepo{},
		&fakeOutboxRepository{},
		&fakeSink{},
	)
}

func TestCalculateDeductionRateBoundary(t *testing.T) {
	joined := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		salary   int64
		wantRate int64
	}{
		{14999, 330},
		{15000, 500},
		{15001, 330},
	}

	for _, tt := range tests {
		u := testUser(tt.salary, joined)
		svc := newCalcService(u, nil, nil, nil)

		result, err := svc.Calculate(context.Background(), u.ID.String(), 2025, 9)

		assert.NoError(t, err)
		assert.Equal(t, tt.wantRate, result.DeductionRate)
	}
}

func TestCalculateLeaveClippedToMonth(t *testing.T) {
	u := testUser(20000, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	// Spans the last 3 days of March and the first 2 of April.
	leaves := []leave.Leave{{
		FromDate: time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
	}}
	svc := newCalcService(u, nil, leaves, nil)

	result, err := svc.Calculate(context.Background(), u.ID.String(), 2024, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, result.LeaveDays)
}

func TestCalculateFreeLeaveWaiver(t *testing.T) {
	leaves := []leave.Leave{{
		FromDate: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC),
	}}

	t.Run("joined before target month", func(t *testing.T) {
		u := testUser(20000, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
		svc := newCalcService(u, nil, leaves, nil)

		result, err := svc.Calculate(context.Background(), u.ID.String(), 2025, 9)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.LeaveDays)
		assert.Equal(t, 1, result.DeductibleLeaves)
	})

	t.Run("joined during target month", func(t *testing.T) {
		u := testUser(20000, time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC))
		svc := newCalcService(u, nil, leaves, nil)

		result, err := svc.Calculate(context.Background(), u.ID.String(), 2025, 9)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.DeductibleLeaves)
	})
}

func TestCalculateAbsenceClamp(t *testing.T) {
	u := testUser(20000, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	// June 2025 has 21 working days; presence plus leave exceeds it.
	leaves := []leave.Leave{{
		FromDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	}}
	svc := newCalcService(u, attendanceRows(20), leaves, nil)

	result, err := svc.Calculate(context.Background(), u.ID.String(), 2025, 6)

	assert.NoError(t, err)
	assert.Equal(t, 21, result.TotalWorkingDays)
	assert.Equal(t, 10, result.LeaveDays)
	assert.Equal(t, 0, result.AbsentDays)
	assert.Equal(t, int64(0), result.AbsentDeduction)
}

func TestCalculateNetPay(t *testing.T) {
	u := testUser(20000, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	// September 2025 has 22 working days: 18 present + 2 leave leaves 2 absent.
	leaves := []leave.Leave{{
		FromDate: time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC),
	}}
	weekends := []weekendwork.WeekendWork{
		{Date: time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, 9, 13, 0, 0, 0, 0, time.UTC)},
	}
	svc := newCalcService(u, attendanceRows(18), leaves, weekends)

	result, err := svc.Calculate(context.Background(), u.ID.String(), 2025, 9)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.DeductibleLeaves)
	assert.Equal(t, 2, result.AbsentDays)
	assert.Equal(t, int64(330), result.LeaveDeduction)
	assert.Equal(t, int64(660), result.AbsentDeduction)
	assert.Equal(t, int64(500), result.WeekendBonus)
	assert.Equal(t, int64(19510), result.NetPay)
	assert.Equal(t, int64(20500), result.GrossEarnings)
	assert.Equal(t, int64(990), result.TotalDeductions)
}

func TestCalculateFullyAbsentMonth(t *testing.T) {
	u := testUser(15000, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	svc := newCalcService(u, nil, nil, nil)

	// September 2025 has 22 working days.
	result, err := svc.Calculate(context.Background(), u.ID.String(), 2025, 9)

	assert.NoError(t, err)
	assert.Equal(t, 0, result.PresentDays)
	assert.Equal(t, 22, result.AbsentDays)
	assert.Equal(t, int64(11000), result.AbsentDeduction)
	assert.Equal(t, int64(4000), result.NetPay)
}

func TestCalculateUserNotFound(t *testing.T) {
	svc := newCalcService(nil, nil, nil, nil)

	_, err := svc.Calculate(context.Background(), uuid.NewString(), 2025, 9)

	assert.ErrorIs(t, err, payrollerrors.ErrUserNotFound)
}

func TestCalculateInvalidPeriod(t *testing.T) {
	svc := newCalcService(nil, nil, nil, nil)

	_, err := svc.Calculate(context.Background(), uuid.NewString(), 2025, 13)

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
}

func TestGeneratePayslip(t *testing.T) {
	u := testUser(20000, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	users := &fakeUserSource{
		findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
			return u, nil
		},
	}
	slipRepo := &fakeSlipRepo{}
	sink := &fakeSink{}
	svc := payroll.NewService(
		nil, users,
		&fakeAttendanceSource{rows: attendanceRows(18)},
		&fakeLeaveSource{},
		&fakeWeekendSource{},
		slipRepo,
		&fakeOutboxRepository{},
		sink,
	)

	artifact, err := svc.GeneratePayslip(context.Background(), u.ID.String(), 2025, 9)

	assert.NoError(t, err)
	assert.Equal(t, "asha_payslip_2025-09.pdf", artifact.Filename)
	assert.Equal(t, "payslips/asha_payslip_2025-09.pdf", artifact.Path)
	assert.True(t, bytes.HasPrefix(artifact.PDF, []byte("%PDF-1.4")))
	assert.Len(t, slipRepo.saved, 1)
	assert.Equal(t, artifact.Result.NetPay, slipRepo.saved[0].NetPay)
}

func TestQueueRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	members := []user.User{
		*testUser(20000, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)),
		*testUser(15000, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)),
	}
	users := &fakeUserSource{
		findAllFn: func(ctx context.Context) ([]user.User, error) {
			return members, nil
		},
	}

	var created []kafka.OutboxEvent
	outbox := &fakeOutboxRepository{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			created = append(created, event)
			return nil
		},
	}

	svc := payroll.NewService(
		db, users,
		&fakeAttendanceSource{},
		&fakeLeaveSource{},
		&fakeWeekendSource{},
		&fakeSlipRepo{},
		outbox,
		&fakeSink{},
	)

	resp, err := svc.QueueRun(context.Background(), uuid.NewString(), 2025, 8)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Queued)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 8, resp.Month)
	assert.Len(t, created, 2)

	var event events.PayslipRequestedEvent
	assert.NoError(t, json.Unmarshal(created[0].Payload, &event))
	assert.Equal(t, events.PayslipRequestedTopic, created[0].Topic)
	assert.Equal(t, members[0].ID.String(), event.UserID)
	assert.Equal(t, 2025, event.Year)
	assert.Equal(t, 8, event.Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueRunRejectsConcurrentRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	started := make(chan struct{})
	release := make(chan struct{})
	users := &fakeUserSource{
		findAllFn: func(ctx context.Context) ([]user.User, error) {
			close(started)
			<-release
			return nil, nil
		},
	}

	svc := payroll.NewService(
		db, users,
		&fakeAttendanceSource{},
		&fakeLeaveSource{},
		&fakeWeekendSource{},
		&fakeSlipRepo{},
		&fakeOutboxRepository{},
		&fakeSink{},
	)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.QueueRun(context.Background(), uuid.NewString(), 2025, 8)
		firstDone <- err
	}()
	<-started

	_, err = svc.QueueRun(context.Background(), uuid.NewString(), 2025, 8)
	assert.ErrorIs(t, err, payrollerrors.ErrRunInProgress)

	close(release)
	assert.NoError(t, <-firstDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}
