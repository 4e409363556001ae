package entity

// Role is the closed enumeration of user roles.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleCounsellor Role = "counsellor"
	RoleTrainer    Role = "trainer"
	RoleStudent    Role = "student"
	RoleParent     Role = "parent"
	RoleGuest      Role = "guest"
	RoleSystem     Role = "system"
)

// DefaultRole is assigned when no role is specified.
const DefaultRole = RoleGuest

var roles = map[Role]struct{}{
	RoleSuperAdmin: {},
	RoleAdmin:      {},
	RoleCounsellor: {},
	RoleTrainer:    {},
	RoleStudent:    {},
	RoleParent:     {},
	RoleGuest:      {},
	RoleSystem:     {},
}

// Valid reports whether r belongs to the role enumeration.
func (r Role) Valid() bool {
	_, ok := roles[r]
	return ok
}
