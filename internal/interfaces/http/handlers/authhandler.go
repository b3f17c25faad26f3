package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sovoz-hq/sovoz/internal/application/user/usecases"
	"github.com/sovoz-hq/sovoz/internal/shared/constants"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
	"github.com/sovoz-hq/sovoz/internal/shared/utils"
)

type AuthHandler struct {
	registerUC      usecases.RegisterExecutor
	loginUC         usecases.LoginExecutor
	getCurrentUC    usecases.GetCurrentUserExecutor
	requestResetUC  usecases.RequestPasswordResetExecutor
	resetPasswordUC usecases.ResetPasswordExecutor
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	getCurrentUC usecases.GetCurrentUserExecutor,
	requestResetUC usecases.RequestPasswordResetExecutor,
	resetPasswordUC usecases.ResetPasswordExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC:      registerUC,
		loginUC:         loginUC,
		getCurrentUC:    getCurrentUC,
		requestResetUC:  requestResetUC,
		resetPasswordUC: resetPasswordUC,
		logger:          logger,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "registration successful", result)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

// GetCurrentUser handles GET /api/auth/user
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)
	if userID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.getCurrentUC.Execute(c.Request.Context(), usecases.GetCurrentUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"user": result})
}

// ForgotPassword handles POST /api/auth/forgot-password.
// Always responds 200 so the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.requestResetUC.Execute(c.Request.Context(), usecases.RequestPasswordResetCommand{Email: req.Email}); err != nil {
		h.logger.Errorw("password reset request failed", "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "if the email exists, a reset link has been sent", nil)
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.resetPasswordUC.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.Password,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password has been reset", nil)
}
