package authorization

import "strings"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleAgent  UserRole = "agent"
	RoleOwner  UserRole = "owner"
	RoleTenant UserRole = "tenant"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleOwner, RoleTenant:
		return true
	}
	return false
}

// ParseUserRole normalizes s. Unknown roles fall back to tenant, the least privileged role.
func ParseUserRole(s string) UserRole {
	role := UserRole(strings.ToLower(strings.TrimSpace(s)))
	if role.IsValid() {
		return role
	}
	return RoleTenant
}
