// File: internal/domain/entity/navigation.go
package entity

// NavigationEntity is an addressable application feature governed by
// per-role permission flags. entity_code is the natural primary key.
type NavigationEntity struct {
	Code     string `db:"entity_code"`
	Name     string `db:"name"`
	Path     string `db:"path"`
	Icon     string `db:"icon"`
	OrderNum int    `db:"order_num"`
	IsActive bool   `db:"is_active"`
}

// PermissionEntry is one row of a resolved permission set: the permission
// flags joined with the navigation metadata of the governed entity.
type PermissionEntry struct {
	RoleDetailID int64  `json:"roleDetailId" db:"role_detail_id"`
	EntityCode   string `json:"entityCode" db:"entity_code"`
	Allow        bool   `json:"allow" db:"allow"`
	CanCreate    bool   `json:"canCreate" db:"can_create"`
	CanEdit      bool   `json:"canEdit" db:"can_edit"`
	Path         string `json:"path" db:"path"`
	OrderNum     int    `json:"orderNum" db:"order_num"`
	Icon         string `json:"icon" db:"icon"`
}
