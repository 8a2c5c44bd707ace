package user

import "errors"

type Role string

const (
	RoleSuperuser  Role = "superuser"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleUnverified Role = "unverified"
)

func NewRole(r string) (Role, error) {
	role := Role(r)
	if !role.IsValid() {
		return "", errors.New("invalid role")
	}
	return role, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperuser, RoleAdmin, RoleUser, RoleUnverified:
		return true
	}
	return false
}

func (r Role) rank() int {
	switch r {
	case RoleSuperuser:
		return 3
	case RoleAdmin:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants everything the other role grants.
func (r Role) AtLeast(other Role) bool {
	return r.rank() >= other.rank()
}
