// File: internal/handler/http/auth_handler.go
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
	"github.com/expensio-labs/expense-platform/auth-service/internal/service"
)

// AuthService is the slice of the login service the handler needs.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// RegistrationService is the slice of the registration service the handler
// needs.
type RegistrationService interface {
	Register(ctx context.Context, input service.RegisterInput) (*entity.User, error)
}

type AuthHandler struct {
	authService         AuthService
	registrationService RegistrationService
	logger              *zap.Logger
}

func NewAuthHandler(authService AuthService, registrationService RegistrationService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		registrationService: registrationService,
		logger:              logger,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=64"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request body.", domainErrors.CodeBadRequest)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUserNotFound):
			respondWithError(c, http.StatusNotFound, "Invalid username.", domainErrors.CodeNotFound)
		case errors.Is(err, domainErrors.ErrAccountLocked):
			respondWithError(c, http.StatusBadRequest, "Account is locked, please try again later.", domainErrors.CodeBadRequest)
		case errors.Is(err, domainErrors.ErrInvalidPassword):
			respondWithError(c, http.StatusBadRequest, "Invalid password.", domainErrors.CodeBadRequest)
		default:
			h.logger.Error("login failed", zap.Error(err))
			respondWithError(c, http.StatusInternalServerError, "An unexpected error occurred.", domainErrors.CodeInternal)
		}
		return
	}

	respondWithData(c, http.StatusOK, gin.H{"token": token})
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request body.", domainErrors.CodeBadRequest)
		return
	}

	user, err := h.registrationService.Register(c.Request.Context(), service.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmailExists):
			respondWithError(c, http.StatusBadRequest, "Email is already registered.", domainErrors.CodeBadRequest)
		case errors.Is(err, domainErrors.ErrUsernameExists):
			respondWithError(c, http.StatusBadRequest, "Username is already registered.", domainErrors.CodeBadRequest)
		case errors.Is(err, domainErrors.ErrValidation):
			respondWithError(c, http.StatusBadRequest, "Passwords do not match.", domainErrors.CodeBadRequest)
		case errors.Is(err, domainErrors.ErrPersistence):
			h.logger.Error("registration failed", zap.Error(err))
			respondWithError(c, http.StatusInternalServerError, "Could not create the account.", domainErrors.CodeInternal)
		default:
			h.logger.Error("registration failed", zap.Error(err))
			respondWithError(c, http.StatusInternalServerError, "An unexpected error occurred.", domainErrors.CodeInternal)
		}
		return
	}

	respondWithData(c, http.StatusOK, gin.H{"username": user.Username})
}
