package notification

type NotificationResponse struct {
	ID        string  `json:"id"`
	Message   string  `json:"message"`
	Read      bool    `json:"read"`
	ReadAt    *string `json:"read_at,omitempty"`
	CreatedAt string  `json:"created_at"`
}
