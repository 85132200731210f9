// File: internal/domain/repository/postgres/role_postgres_repository.go
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/repository"
)

// RoleRepositoryPostgres reads the named roles feeding token claims.
type RoleRepositoryPostgres struct {
	pool *pgxpool.Pool
}

func NewRoleRepositoryPostgres(pool *pgxpool.Pool) *RoleRepositoryPostgres {
	return &RoleRepositoryPostgres{pool: pool}
}

func (r *RoleRepositoryPostgres) GetRoleNamesForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`
	rows, err := conn(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user roles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan role name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}
	return names, nil
}

var _ repository.RoleRepository = (*RoleRepositoryPostgres)(nil)
