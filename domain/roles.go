package domain

// The closed set of account roles. Roles are validated at the service
// boundary and stored as plain strings; the database does not enforce the
// enumeration.
const (
	RoleAdmin     = "admin"
	RoleChuNha    = "chu_nha"
	RoleMoiGioi   = "moi_gioi"
	RoleNhaDauTu  = "nha_dau_tu"
	RoleNguoiThue = "nguoi_thue"
	RoleNguoiMua  = "nguoi_mua"
)

// DefaultRole is assigned when a registration omits the role field.
const DefaultRole = RoleNguoiMua

var allowedRoles = map[string]struct{}{
	RoleAdmin:     {},
	RoleChuNha:    {},
	RoleMoiGioi:   {},
	RoleNhaDauTu:  {},
	RoleNguoiThue: {},
	RoleNguoiMua:  {},
}

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	_, ok := allowedRoles[role]
	return ok
}

// Roles returns the allowed role tags.
func Roles() []string {
	return []string{RoleAdmin, RoleChuNha, RoleMoiGioi, RoleNhaDauTu, RoleNguoiThue, RoleNguoiMua}
}
