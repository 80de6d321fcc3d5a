package attendance

type AttendanceResponse struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	Date             string  `json:"date"`
	LoginTime        string  `json:"login_time"`
	LogoutTime       *string `json:"logout_time,omitempty"`
	TotalWorkMinutes int     `json:"total_work_minutes"`
	Status           string  `json:"status"`
}

type HistoryFilterRequest struct {
	From string `form:"from"`
	To   string `form:"to"`
}
