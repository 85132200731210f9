// File: internal/domain/repository/tenant_repository.go
package repository

import (
	"context"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
)

// TenantRepository reads tenant records. Tenants are read-only to this
// service.
type TenantRepository interface {
	FindByCode(ctx context.Context, code string) (*entity.Tenant, error)
	FindByID(ctx context.Context, id int64) (*entity.Tenant, error)
}

// RoleGroupRepository reads role group records.
type RoleGroupRepository interface {
	// FindDefaultForTenant returns the tenant's default role group, the
	// one assigned to newly registered users.
	FindDefaultForTenant(ctx context.Context, tenantID int64) (*entity.RoleGroup, error)
}
