// File: internal/domain/repository/postgres/tenant_postgres_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/repository"
)

// TenantRepositoryPostgres reads tenant and role group records.
type TenantRepositoryPostgres struct {
	pool *pgxpool.Pool
}

func NewTenantRepositoryPostgres(pool *pgxpool.Pool) *TenantRepositoryPostgres {
	return &TenantRepositoryPostgres{pool: pool}
}

func (r *TenantRepositoryPostgres) FindByCode(ctx context.Context, code string) (*entity.Tenant, error) {
	query := `SELECT id, name, code, is_active FROM tenants WHERE code = $1`
	return r.scanTenant(conn(ctx, r.pool).QueryRow(ctx, query, code))
}

func (r *TenantRepositoryPostgres) FindByID(ctx context.Context, id int64) (*entity.Tenant, error) {
	query := `SELECT id, name, code, is_active FROM tenants WHERE id = $1`
	return r.scanTenant(conn(ctx, r.pool).QueryRow(ctx, query, id))
}

func (r *TenantRepositoryPostgres) scanTenant(row pgx.Row) (*entity.Tenant, error) {
	tenant := &entity.Tenant{}
	if err := row.Scan(&tenant.ID, &tenant.Name, &tenant.Code, &tenant.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to scan tenant: %w", err)
	}
	return tenant, nil
}

// RoleGroupRepositoryPostgres reads role group records.
type RoleGroupRepositoryPostgres struct {
	pool *pgxpool.Pool
}

func NewRoleGroupRepositoryPostgres(pool *pgxpool.Pool) *RoleGroupRepositoryPostgres {
	return &RoleGroupRepositoryPostgres{pool: pool}
}

// FindDefaultForTenant returns the tenant's lowest-id role group, which is
// the group seeded as the default assignment for new accounts.
func (r *RoleGroupRepositoryPostgres) FindDefaultForTenant(ctx context.Context, tenantID int64) (*entity.RoleGroup, error) {
	query := `SELECT id, name, tenant_id FROM role_groups WHERE tenant_id = $1 ORDER BY id LIMIT 1`
	group := &entity.RoleGroup{}
	if err := conn(ctx, r.pool).QueryRow(ctx, query, tenantID).Scan(&group.ID, &group.Name, &group.TenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no role group configured for tenant %d", tenantID)
		}
		return nil, fmt.Errorf("failed to find default role group: %w", err)
	}
	return group, nil
}

var (
	_ repository.TenantRepository    = (*TenantRepositoryPostgres)(nil)
	_ repository.RoleGroupRepository = (*RoleGroupRepositoryPostgres)(nil)
)
