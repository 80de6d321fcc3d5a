package weekendwork

type SubmitRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type WeekendWorkResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	Date       string  `json:"date"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	ApprovedBy *string `json:"approved_by,omitempty"`
	ApprovedAt *string `json:"approved_at,omitempty"`
}
