package shift

type RequestShiftChange struct {
	Date      string `json:"date" binding:"required"`
	FromShift string `json:"from_shift" binding:"required,oneof=morning evening night"`
	ToShift   string `json:"to_shift" binding:"required,oneof=morning evening night"`
	Reason    string `json:"reason"`
}

type ShiftResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Date      string  `json:"date"`
	FromShift string  `json:"from_shift"`
	ToShift   string  `json:"to_shift"`
	Reason    string  `json:"reason,omitempty"`
	Status    string  `json:"status"`
	DecidedBy *string `json:"decided_by,omitempty"`
	DecidedAt *string `json:"decided_at,omitempty"`
}
