package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventboard-backend/internal/adapter/http/dto"
	"eventboard-backend/internal/adapter/http/mapper"
	"eventboard-backend/internal/adapter/http/middleware"
	"eventboard-backend/internal/core/domain"
	"eventboard-backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidSignup)
		return
	}

	if _, err := h.authService.Signup(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: successMsg(c, "signupSuccess", "Signup successful"),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user := mapper.ToUserRef(session.User.Ref())
	c.JSON(http.StatusOK, dto.LoginResponse{
		Success:  true,
		Message:  successMsg(c, "loginSuccess", "Login successful"),
		Token:    session.Token,
		UserID:   user.ID,
		Username: user.Username,
		User:     user,
	})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, dto.VerifyResponse{Success: true, UserID: middleware.GetUserID(c)})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: successMsg(c, "passwordUpdated", "Password updated!"),
	})
}
