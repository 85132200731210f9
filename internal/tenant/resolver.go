// File: internal/tenant/resolver.go
package tenant

import (
	"context"
	"fmt"
	"strings"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/repository"
)

// Assignment is a resolved tenant together with the role group new accounts
// in that tenant receive.
type Assignment struct {
	Tenant    *entity.Tenant
	RoleGroup *entity.RoleGroup
}

// Resolver maps tenant codes to assignments. Codes are normalized to
// lower case so lookups are case-insensitive.
type Resolver struct {
	tenants     repository.TenantRepository
	roleGroups  repository.RoleGroupRepository
	defaultCode string
}

func NewResolver(tenants repository.TenantRepository, roleGroups repository.RoleGroupRepository, defaultCode string) *Resolver {
	return &Resolver{
		tenants:     tenants,
		roleGroups:  roleGroups,
		defaultCode: normalizeCode(defaultCode),
	}
}

// ResolveDefault resolves the configured default tenant.
func (r *Resolver) ResolveDefault(ctx context.Context) (*Assignment, error) {
	return r.ResolveByCode(ctx, r.defaultCode)
}

// ResolveByCode looks up an active tenant by code and its default role
// group. An inactive tenant is treated as unresolvable.
func (r *Resolver) ResolveByCode(ctx context.Context, code string) (*Assignment, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("tenant code is empty")
	}

	t, err := r.tenants.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant %q: %w", code, err)
	}
	if !t.IsActive {
		return nil, fmt.Errorf("tenant %q is inactive", code)
	}

	group, err := r.roleGroups.FindDefaultForTenant(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	return &Assignment{Tenant: t, RoleGroup: group}, nil
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
