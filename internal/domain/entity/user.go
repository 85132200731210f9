// File: internal/domain/entity/user.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the "users" table. Every user belongs to exactly one
// tenant and one role group at any time.
type User struct {
	ID                  uuid.UUID  `db:"id"`
	Username            string     `db:"username"`
	Email               string     `db:"email"`
	PasswordHash        string     `db:"password_hash"`
	FailedLoginAttempts int        `db:"failed_login_attempts"`
	LockoutUntil        *time.Time `db:"lockout_until"` // Nullable
	IsActive            bool       `db:"is_active"`
	TenantID            int64      `db:"tenant_id"`
	RoleGroupID         int64      `db:"role_group_id"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           *time.Time `db:"updated_at"` // Nullable
}

// IsLockedOut reports whether the lockout window is still in effect at now.
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutUntil != nil && now.Before(*u.LockoutUntil)
}

// DefaultRoleName is substituted when a user has no assigned roles.
const DefaultRoleName = "User"
