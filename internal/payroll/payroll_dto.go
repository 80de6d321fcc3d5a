package payroll

import "time"

// PayrollResult carries every intermediate figure of a monthly
// computation; the renderer and the batch summary both consume them.
type PayrollResult struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`

	Year  int `json:"year"`
	Month int `json:"month"`

	JoinDate time.Time `json:"join_date"`

	Salary        int64 `json:"salary"`
	DeductionRate int64 `json:"deduction_rate"`

	TotalWorkingDays int `json:"total_working_days"`
	PresentDays      int `json:"present_days"`
	LeaveDays        int `json:"leave_days"`
	DeductibleLeaves int `json:"deductible_leaves"`
	AbsentDays       int `json:"absent_days"`
	WeekendDays      int `json:"weekend_days"`

	LeaveDeduction  int64 `json:"leave_deduction"`
	AbsentDeduction int64 `json:"absent_deduction"`
	WeekendBonus    int64 `json:"weekend_bonus"`
	GrossEarnings   int64 `json:"gross_earnings"`
	TotalDeductions int64 `json:"total_deductions"`
	NetPay          int64 `json:"net_pay"`
}

type RunRequest struct {
	Year  int `json:"year" binding:"omitempty,min=2000,max=2100"`
	Month int `json:"month" binding:"omitempty,min=1,max=12"`
}

type RunResponse struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Queued int `json:"queued"`
}

// RunSummary is the aggregate outcome of a monthly batch run.
type RunSummary struct {
	Year      int `json:"year"`
	Month     int `json:"month"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}
