package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"github.com/shareaichat/shareaichat-backend/internal/middleware"
	"github.com/shareaichat/shareaichat-backend/internal/service"
)

// AuthHandler handles signup, login and the current user's profile.
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req domain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUserAlreadyExists):
			common.ErrorResponse(c, http.StatusConflict, "username is already taken")
		case errors.Is(err, common.ErrCaptchaFailed):
			common.ErrorResponse(c, http.StatusBadRequest, "captcha verification failed")
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	common.CreatedResponse(c, resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			common.ErrorResponse(c, http.StatusUnauthorized, "invalid username or password")
		case errors.Is(err, common.ErrCaptchaFailed):
			common.ErrorResponse(c, http.StatusBadRequest, "captcha verification failed")
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	common.SuccessResponse(c, resp)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "you must be logged in")
		return
	}

	user, err := h.service.CurrentUser(userID)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "user not found")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	common.SuccessResponse(c, user)
}

// UpdateProfile handles PUT /auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "you must be logged in")
		return
	}

	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateEmail(userID, req.Email); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	common.SuccessResponse(c, gin.H{"updated": true})
}
