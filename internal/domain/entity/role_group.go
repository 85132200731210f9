// File: internal/domain/entity/role_group.go
package entity

// RoleGroup is a named permission bundle assigned to users within one tenant.
type RoleGroup struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	TenantID int64  `db:"tenant_id"`
}

// RolePermission grants per-entity flags to a role group. EntityCode, not a
// surrogate id, joins it to NavigationEntity.
type RolePermission struct {
	ID          int64  `db:"id"`
	RoleGroupID int64  `db:"role_group_id"`
	EntityCode  string `db:"entity_code"`
	Allow       bool   `db:"allow"`
	CanCreate   bool   `db:"can_create"`
	CanEdit     bool   `db:"can_edit"`
}
