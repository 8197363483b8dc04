package dto

type SignupRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type LoginResponse struct {
	Success  bool    `json:"success"`
	Message  string  `json:"message"`
	Token    string  `json:"token"`
	UserID   string  `json:"userId"`
	Username string  `json:"username"`
	User     UserRef `json:"user"`
}

type VerifyResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}
