// File: internal/service/permission_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/repository"
	"github.com/expensio-labs/expense-platform/auth-service/internal/utils/metrics"
)

// PermissionService resolves the entities a user may reach within their
// tenant.
type PermissionService struct {
	userRepo       repository.UserRepository
	permissionRepo repository.PermissionRepository
	logger         *zap.Logger
}

func NewPermissionService(
	userRepo repository.UserRepository,
	permissionRepo repository.PermissionRepository,
	logger *zap.Logger,
) *PermissionService {
	return &PermissionService{
		userRepo:       userRepo,
		permissionRepo: permissionRepo,
		logger:         logger,
	}
}

// GetPermissionsForUser returns the user's permission entries. An unknown
// or inactive user is a distinct failure; a known user with no matching
// rows gets an empty list, not an error.
func (s *PermissionService) GetPermissionsForUser(ctx context.Context, userID uuid.UUID) ([]entity.PermissionEntry, error) {
	exists, err := s.userRepo.ExistsActive(ctx, userID)
	if err != nil {
		metrics.RoleResolutionsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		metrics.RoleResolutionsTotal.WithLabelValues("not_found").Inc()
		return nil, domainErrors.ErrUserNotFoundOrInactive
	}

	entries, err := s.permissionRepo.ResolveForUser(ctx, userID)
	if err != nil {
		metrics.RoleResolutionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if entries == nil {
		entries = []entity.PermissionEntry{}
	}

	metrics.RoleResolutionsTotal.WithLabelValues("success").Inc()
	return entries, nil
}
