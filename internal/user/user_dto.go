package user

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin manager employee"`
	Salary   int64  `json:"salary" binding:"min=0"`
	Manager  string `json:"manager"`
}

type UserResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Salary      int64   `json:"salary"`
	ManagerName *string `json:"manager_name,omitempty"`
	DateOfJoin  string  `json:"date_of_joining"`
	LastLogin   *string `json:"last_login,omitempty"`
}
