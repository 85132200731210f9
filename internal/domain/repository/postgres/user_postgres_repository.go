// File: internal/domain/repository/postgres/user_postgres_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
	domainErrors "github.com/expensio-labs/expense-platform/auth-service/internal/domain/errors"
	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/repository"
)

const userColumns = `id, username, email, password_hash, failed_login_attempts,
	       lockout_until, is_active, tenant_id, role_group_id, created_at, updated_at`

// UserRepositoryPostgres implements repository.UserRepository on PostgreSQL.
type UserRepositoryPostgres struct {
	pool *pgxpool.Pool
}

func NewUserRepositoryPostgres(pool *pgxpool.Pool) *UserRepositoryPostgres {
	return &UserRepositoryPostgres{pool: pool}
}

// Create persists a new user. Unique violations on email or username map to
// the duplicate sentinels; this is the authoritative duplicate guard, the
// service-level pre-checks are only a fast path.
func (r *UserRepositoryPostgres) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, failed_login_attempts,
		                   lockout_until, is_active, tenant_id, role_group_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := conn(ctx, r.pool).Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FailedLoginAttempts,
		user.LockoutUntil, user.IsActive, user.TenantID, user.RoleGroupID, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Wrapped with the constraint name so a store-level rejection is
			// distinguishable from a pre-check hit in logs.
			if strings.Contains(pgErr.ConstraintName, "users_email") {
				return fmt.Errorf("constraint %s: %w", pgErr.ConstraintName, domainErrors.ErrEmailExists)
			}
			if strings.Contains(pgErr.ConstraintName, "users_username") {
				return fmt.Errorf("constraint %s: %w", pgErr.ConstraintName, domainErrors.ErrUsernameExists)
			}
			return fmt.Errorf("unique constraint %s: %w", pgErr.ConstraintName, domainErrors.ErrDuplicateValue)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepositoryPostgres) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(conn(ctx, r.pool).QueryRow(ctx, query, id))
}

func (r *UserRepositoryPostgres) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanUser(conn(ctx, r.pool).QueryRow(ctx, query, username))
}

func (r *UserRepositoryPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(conn(ctx, r.pool).QueryRow(ctx, query, email))
}

func (r *UserRepositoryPostgres) scanUser(row pgx.Row) (*entity.User, error) {
	user := &entity.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FailedLoginAttempts,
		&user.LockoutUntil, &user.IsActive, &user.TenantID, &user.RoleGroupID,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

// ExistsActive reports whether an active user with the given id exists.
func (r *UserRepositoryPostgres) ExistsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND is_active)`
	var exists bool
	if err := conn(ctx, r.pool).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// IncrementFailedLoginAttempts bumps the counter in a single statement and
// returns the new value. The store serializes concurrent increments so no
// update is lost under parallel failed logins.
func (r *UserRepositoryPostgres) IncrementFailedLoginAttempts(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
		UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1
		WHERE id = $1
		RETURNING failed_login_attempts
	`
	var attempts int
	if err := conn(ctx, r.pool).QueryRow(ctx, query, id).Scan(&attempts); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to increment failed login attempts: %w", err)
	}
	return attempts, nil
}

// SetLockout writes the lockout deadline; nil clears it.
func (r *UserRepositoryPostgres) SetLockout(ctx context.Context, id uuid.UUID, until *time.Time) error {
	query := `UPDATE users SET lockout_until = $1 WHERE id = $2`
	result, err := conn(ctx, r.pool).Exec(ctx, query, until, id)
	if err != nil {
		return fmt.Errorf("failed to update lockout: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

// ResetFailedLoginAttempts zeroes the counter and clears the lockout.
func (r *UserRepositoryPostgres) ResetFailedLoginAttempts(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET failed_login_attempts = 0, lockout_until = NULL WHERE id = $1`
	result, err := conn(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to reset failed login attempts: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepositoryPostgres)(nil)
