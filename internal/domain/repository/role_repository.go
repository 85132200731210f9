// File: internal/domain/repository/role_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
)

// RoleRepository reads the named roles carried as token claims.
type RoleRepository interface {
	// GetRoleNamesForUser returns the role names assigned to a user,
	// sorted by name. An empty slice is not an error.
	GetRoleNamesForUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// PermissionRepository resolves the tenant-scoped permission set of a user.
type PermissionRepository interface {
	// ResolveForUser joins user, tenant, role group, role permissions and
	// navigation entities, keeping only rows where the user, the tenant
	// and the navigation entity are all active. Order is the stable join
	// order, not display order.
	ResolveForUser(ctx context.Context, userID uuid.UUID) ([]entity.PermissionEntry, error)
}
