// File: internal/domain/repository/user_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/entity"
)

// UserRepository is the durable store for user records and their lockout
// counters. Counter mutations must be atomic at the store layer: concurrent
// failed-login attempts against one user must not lose updates.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// ExistsActive reports whether an active user with the given id exists.
	ExistsActive(ctx context.Context, id uuid.UUID) (bool, error)
	// IncrementFailedLoginAttempts atomically increments the counter and
	// returns the new value.
	IncrementFailedLoginAttempts(ctx context.Context, id uuid.UUID) (int, error)
	// SetLockout writes the lockout deadline; nil clears it.
	SetLockout(ctx context.Context, id uuid.UUID, until *time.Time) error
	// ResetFailedLoginAttempts zeroes the counter and clears the lockout.
	ResetFailedLoginAttempts(ctx context.Context, id uuid.UUID) error
}
