package events

import "time"

const PayslipRequestedTopic = "nexografix.hr.payroll.payslip.requested.v1"

// PayslipRequestedEvent asks the consumer to compute one user's payroll for
// a month and render the payslip PDF.
type PayslipRequestedEvent struct {
	EventType   string    `json:"event_type"`
	UserID      string    `json:"user_id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
