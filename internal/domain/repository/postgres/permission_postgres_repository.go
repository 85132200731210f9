// File: internal/domain/repository/postgres/permission_postgres_repository.go
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/repository"
)

// PermissionRepositoryPostgres resolves a user's permitted entities through
// the tenant-scoped join.
type PermissionRepositoryPostgres struct {
	pool *pgxpool.Pool
}

func NewPermissionRepositoryPostgres(pool *pgxpool.Pool) *PermissionRepositoryPostgres {
	return &PermissionRepositoryPostgres{pool: pool}
}

// ResolveForUser joins users → tenants → role_groups → role_permissions →
// navigation_entities. The role group is matched on both its id and the
// user's tenant so a group can never leak across tenants, and entity_code
// is the join key into navigation. Rows survive only when the user, the
// tenant and the navigation entity are all active. ORDER BY rp.id pins the
// join order; display order is the caller's concern.
func (r *PermissionRepositoryPostgres) ResolveForUser(ctx context.Context, userID uuid.UUID) ([]entity.PermissionEntry, error) {
	query := `
		SELECT rp.id, rp.entity_code, rp.allow, rp.can_create, rp.can_edit,
		       ne.path, ne.order_num, ne.icon
		FROM users u
		JOIN tenants t ON t.id = u.tenant_id
		JOIN role_groups rg ON rg.id = u.role_group_id AND rg.tenant_id = u.tenant_id
		JOIN role_permissions rp ON rp.role_group_id = rg.id
		JOIN navigation_entities ne ON ne.entity_code = rp.entity_code
		WHERE u.id = $1
		  AND u.is_active
		  AND t.is_active
		  AND ne.is_active
		ORDER BY rp.id
	`
	rows, err := conn(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve permissions: %w", err)
	}
	defer rows.Close()

	var entries []entity.PermissionEntry
	for rows.Next() {
		var e entity.PermissionEntry
		if err := rows.Scan(
			&e.RoleDetailID, &e.EntityCode, &e.Allow, &e.CanCreate, &e.CanEdit,
			&e.Path, &e.OrderNum, &e.Icon,
		); err != nil {
			return nil, fmt.Errorf("failed to scan permission row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating permission rows: %w", err)
	}
	return entries, nil
}

var _ repository.PermissionRepository = (*PermissionRepositoryPostgres)(nil)
