// File: internal/handler/http/role_handler.go
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
)

// PermissionService is the slice of the permission service the handler
// needs.
type PermissionService interface {
	GetPermissionsForUser(ctx context.Context, userID uuid.UUID) ([]entity.PermissionEntry, error)
}

type RoleHandler struct {
	permissionService PermissionService
	logger            *zap.Logger
}

func NewRoleHandler(permissionService PermissionService, logger *zap.Logger) *RoleHandler {
	return &RoleHandler{permissionService: permissionService, logger: logger}
}

// GetPermissions handles GET /api/v1/roles/:userId.
func (h *RoleHandler) GetPermissions(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid user id.", domainErrors.CodeBadRequest)
		return
	}

	entries, err := h.permissionService.GetPermissionsForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFoundOrInactive) {
			respondWithError(c, http.StatusNotFound, "User not found or inactive.", domainErrors.CodeNotFound)
			return
		}
		h.logger.Error("permission resolution failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		respondWithError(c, http.StatusInternalServerError, "An unexpected error occurred.", domainErrors.CodeInternal)
		return
	}

	respondWithData(c, http.StatusOK, entries)
}
