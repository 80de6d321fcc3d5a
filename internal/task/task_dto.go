package task

type AssignTaskRequest struct {
	Title            string `json:"title" binding:"required,max=255"`
	Details          string `json:"details"`
	AssigneeUsername string `json:"assignee_username" binding:"required"`
	DueDate          string `json:"due_date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress completed"`
}

type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Details     string  `json:"details,omitempty"`
	AssigneeID  string  `json:"assignee_id"`
	AssignedBy  string  `json:"assigned_by"`
	DueDate     *string `json:"due_date,omitempty"`
	Status      string  `json:"status"`
	StartedAt   *string `json:"started_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
