package timesheet

type UpsertEntryRequest struct {
	Date    string  `json:"date" binding:"required"`
	Project string  `json:"project" binding:"required,max=255"`
	Hours   float64 `json:"hours" binding:"required,gt=0,lte=24"`
	Notes   string  `json:"notes"`
}

type SubmitRequest struct {
	Week string `json:"week" binding:"required"`
}

type ReopenRequestBody struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type EntryResponse struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Project string  `json:"project"`
	Hours   float64 `json:"hours"`
	Notes   string  `json:"notes,omitempty"`
}

type TimesheetResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	WeekStart   string          `json:"week_start"`
	Status      string          `json:"status"`
	TotalHours  float64         `json:"total_hours"`
	SubmittedAt *string         `json:"submitted_at,omitempty"`
	ApprovedBy  *string         `json:"approved_by,omitempty"`
	ApprovedAt  *string         `json:"approved_at,omitempty"`
	Entries     []EntryResponse `json:"entries"`
}

type ReopenResponse struct {
	ID          string  `json:"id"`
	TimesheetID string  `json:"timesheet_id"`
	UserID      string  `json:"user_id"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`
	DecidedBy   *string `json:"decided_by,omitempty"`
	DecidedAt   *string `json:"decided_at,omitempty"`
}
