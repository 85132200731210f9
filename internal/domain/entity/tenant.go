// File: internal/domain/entity/tenant.go
package entity

// Tenant is a customer organization scoping data partitioning.
// Read-only to this service.
type Tenant struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Code     string `db:"code"`
	IsActive bool   `db:"is_active"`
}
