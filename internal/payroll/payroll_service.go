package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/attendance"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/events"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/leave"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/messaging/kafka"
	payrollerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll/errors"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/shared/contextutil"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/user"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/weekendwork"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	// Flat per-day deduction tiers. The exact-equality check on 15000 is a
	// business rule carried over verbatim.
	deductionRateLow     int64 = 500
	deductionRateDefault int64 = 330
	salaryLowTier        int64 = 15000

	weekendBonusPerDay int64 = 250
)

// Source interfaces are deliberately narrow; the concrete module
// repositories satisfy them without adapters.

type UserSource interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindAll(ctx context.Context) ([]user.User, error)
}

type AttendanceSource interface {
	FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.Attendance, error)
}

type LeaveSource interface {
	FindApprovedOverlapping(ctx context.Context, userID string, start, end time.Time) ([]leave.Leave, error)
}

type WeekendSource interface {
	FindApprovedInRange(ctx context.Context, userID string, start, end time.Time) ([]weekendwork.WeekendWork, error)
}

// PayslipArtifact is one generated slip plus the figures behind it.
type PayslipArtifact struct {
	Result   PayrollResult
	Filename string
	Path     string
	PDF      []byte
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, userID string, year, month int) (PayrollResult, error)
	GeneratePayslip(ctx context.Context, userID string, year, month int) (PayslipArtifact, error)
	QueueRun(ctx context.Context, actorID string, year, month int) (RunResponse, error)
}

type service struct {
	db         *sql.DB
	users      UserSource
	attendance AttendanceSource
	leaves     LeaveSource
	weekends   WeekendSource
	repo       Repository
	outbox     kafka.OutboxRepository
	sink       DocumentSink

	group       singleflight.Group
	runInFlight atomic.Bool
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	users UserSource,
	attendanceSource AttendanceSource,
	leaves LeaveSource,
	weekends WeekendSource,
	repo Repository,
	outbox kafka.OutboxRepository,
	sink DocumentSink,
) Service {
	return &service{
		db:         db,
		users:      users,
		attendance: attendanceSource,
		leaves:     leaves,
		weekends:   weekends,
		repo:       repo,
		outbox:     outbox,
		sink:       sink,
		logger:     zap.L().Named("payroll.service"),
	}
}

// Calculate runs the monthly payroll computation for one user. Concurrent
// identical calls collapse into a single execution.
func (s *service) Calculate(ctx context.Context, userID string, year, month int) (PayrollResult, error) {
	if month < 1 || month > 12 || year < 1 {
		return PayrollResult{}, payrollerrors.ErrInvalidPeriod
	}

	key := fmt.Sprintf("%s:%04d-%02d", userID, year, month)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.calculate(ctx, userID, year, month)
	})
	if err != nil {
		return PayrollResult{}, err
	}
	return v.(PayrollResult), nil
}

func (s *service) calculate(ctx context.Context, userID string, year, month int) (PayrollResult, error) {
	start, end := MonthRange(year, month)

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResult{}, payrollerrors.ErrUserNotFound
		}
		return PayrollResult{}, err
	}

	attendanceRows, err := s.attendance.FindByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return PayrollResult{}, err
	}
	leaveRows, err := s.leaves.FindApprovedOverlapping(ctx, userID, start, end)
	if err != nil {
		return PayrollResult{}, err
	}
	weekendRows, err := s.weekends.FindApprovedInRange(ctx, userID, start, end)
	if err != nil {
		return PayrollResult{}, err
	}

	salary := u.Salary
	rate := deductionRateDefault
	if salary == salaryLowTier {
		rate = deductionRateLow
	}

	// Leave spans are clipped to the month before counting.
	leaveDays := 0
	for _, lv := range leaveRows {
		leaveDays += countOverlapDays(lv.FromDate, lv.ToDate, start, end)
	}

	// One free leave per month once the user is past their joining month.
	deductibleLeaves := leaveDays
	if dateOnly(u.CreatedAt).Before(start) && deductibleLeaves > 0 {
		deductibleLeaves--
	}

	totalWorkingDays := CountWorkingDays(start, end)
	presentDays := len(attendanceRows)

	covered := presentDays + leaveDays
	if covered > totalWorkingDays {
		covered = totalWorkingDays
	}
	absentDays := totalWorkingDays - covered

	leaveDeduction := int64(deductibleLeaves) * rate
	var absentDeduction int64
	if absentDays > 0 {
		absentDeduction = int64(absentDays) * rate
	}
	weekendBonus := int64(len(weekendRows)) * weekendBonusPerDay

	netPay := salary - leaveDeduction - absentDeduction + weekendBonus

	return PayrollResult{
		UserID:           u.ID.String(),
		Username:         u.Username,
		FullName:         u.FullName,
		Email:            u.Email,
		Year:             year,
		Month:            month,
		JoinDate:         u.CreatedAt,
		Salary:           salary,
		DeductionRate:    rate,
		TotalWorkingDays: totalWorkingDays,
		PresentDays:      presentDays,
		LeaveDays:        leaveDays,
		DeductibleLeaves: deductibleLeaves,
		AbsentDays:       absentDays,
		WeekendDays:      len(weekendRows),
		LeaveDeduction:   leaveDeduction,
		AbsentDeduction:  absentDeduction,
		WeekendBonus:     weekendBonus,
		GrossEarnings:    salary + weekendBonus,
		TotalDeductions:  leaveDeduction + absentDeduction,
		NetPay:           netPay,
	}, nil
}

// GeneratePayslip computes, renders and stores one user-month payslip.
func (s *service) GeneratePayslip(ctx context.Context, userID string, year, month int) (PayslipArtifact, error) {
	result, err := s.Calculate(ctx, userID, year, month)
	if err != nil {
		return PayslipArtifact{}, err
	}

	doc := BuildPayslip(result)
	pdf, err := RenderPDF(doc)
	if err != nil {
		return PayslipArtifact{}, payrollerrors.RenderFailed(err)
	}

	filename := PayslipFilename(result.Username, year, month)
	path, err := s.sink.Write(filename, pdf)
	if err != nil {
		return PayslipArtifact{}, payrollerrors.RenderFailed(err)
	}

	rec := recordFromResult(result, filename)
	if err := s.repo.SaveRecord(ctx, rec); err != nil {
		return PayslipArtifact{}, err
	}

	s.logger.Info("payslip generated",
		zap.String("user_id", userID),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int64("net_pay", result.NetPay),
		zap.String("path", path),
	)
	return PayslipArtifact{Result: result, Filename: filename, Path: path, PDF: pdf}, nil
}

// QueueRun enqueues one payslip-requested outbox event per user. The
// producer worker relays them to Kafka and the consumer generates slips.
func (s *service) QueueRun(ctx context.Context, actorID string, year, month int) (RunResponse, error) {
	if year == 0 || month == 0 {
		year, month = TargetMonth(time.Now().UTC())
	}
	if month < 1 || month > 12 || year < 1 {
		return RunResponse{}, payrollerrors.ErrInvalidPeriod
	}

	// Only one run may be enqueueing at a time.
	if !s.runInFlight.CompareAndSwap(false, true) {
		return RunResponse{}, payrollerrors.ErrRunInProgress
	}
	defer s.runInFlight.Store(false)

	users, err := s.users.FindAll(ctx)
	if err != nil {
		return RunResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.outbox.WithTx(tx)
	requestID := contextutil.GetRequestID(ctx)
	now := time.Now().UTC()

	for _, u := range users {
		payload, err := json.Marshal(events.PayslipRequestedEvent{
			EventType:   "payslip_requested",
			UserID:      u.ID.String(),
			Year:        year,
			Month:       month,
			RequestedBy: actorID,
			OccurredAt:  now,
		})
		if err != nil {
			return RunResponse{}, err
		}

		event := kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     requestID,
			AggregateType: "payslip",
			AggregateID:   u.ID.String(),
			EventType:     "payslip_requested",
			Topic:         events.PayslipRequestedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := qtx.Create(ctx, event); err != nil {
			return RunResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.logger.Info("payroll run queued",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("users", len(users)),
		zap.String("actor_id", actorID),
	)
	return RunResponse{Year: year, Month: month, Queued: len(users)}, nil
}

// TargetMonth resolves the month a scheduled run should compute: runs
// happen on the 1st, so the target is always the previous calendar month.
func TargetMonth(now time.Time) (int, int) {
	if now.Month() == time.January {
		return now.Year() - 1, 12
	}
	return now.Year(), int(now.Month()) - 1
}

// PayslipFilename is the deterministic per-user-month output name.
func PayslipFilename(username string, year, month int) string {
	return fmt.Sprintf("%s_payslip_%04d-%02d.pdf", username, year, month)
}

func recordFromResult(r PayrollResult, filename string) *PayslipRecord {
	return &PayslipRecord{
		ID:               uuid.New(),
		UserID:           uuid.MustParse(r.UserID),
		Year:             r.Year,
		Month:            r.Month,
		Salary:           r.Salary,
		DeductionRate:    r.DeductionRate,
		TotalWorkingDays: r.TotalWorkingDays,
		PresentDays:      r.PresentDays,
		LeaveDays:        r.LeaveDays,
		DeductibleLeaves: r.DeductibleLeaves,
		AbsentDays:       r.AbsentDays,
		WeekendDays:      r.WeekendDays,
		LeaveDeduction:   r.LeaveDeduction,
		AbsentDeduction:  r.AbsentDeduction,
		WeekendBonus:     r.WeekendBonus,
		NetPay:           r.NetPay,
		Filename:         filename,
	}
}
