package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token               string  `json:"token"`
	Username            string  `json:"username"`
	Role                string  `json:"role"`
	ForceChangePassword bool    `json:"force_change_password"`
	LastLogin           *string `json:"last_login,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
