package leave

type RequestLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"omitempty,oneof=casual sick earned maternity unpaid comp-off other"`
	Reason    string `json:"reason" binding:"required"`
	FromDate  string `json:"from_date" binding:"required"`
	ToDate    string `json:"to_date" binding:"required"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	LeaveType       string  `json:"leave_type"`
	Reason          string  `json:"reason"`
	FromDate        string  `json:"from_date"`
	ToDate          string  `json:"to_date"`
	LeaveDays       int     `json:"leave_days"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}
