// File: internal/domain/entity/role.go
package entity

// Role is a named role carried as a token claim, assigned to users through
// the user_roles join table. Distinct from the tenant-scoped role groups
// that drive permission resolution.
type Role struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
