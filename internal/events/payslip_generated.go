package events

import "time"

const PayslipGeneratedTopic = "nexografix.hr.payroll.payslip.generated.v1"

type PayslipGeneratedEvent struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	NetPay     int64     `json:"net_pay"`
	Filename   string    `json:"filename"`
	OccurredAt time.Time `json:"occurred_at"`
}
