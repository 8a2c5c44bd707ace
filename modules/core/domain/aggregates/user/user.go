package user

import (
	"github.com/google/uuid"

	"github.com/deskflow/deskflow/modules/core/domain/entities/permission"
)

// User is the permission context a navigation filter pass runs against. It is
// rebuilt on login and on permission reload and never mutated in between.
type User interface {
	ID() uuid.UUID
	Role() Role
	IsAdmin() bool
	Permissions() []*permission.Permission
	Can(p *permission.Permission) bool
}

type Option func(*user)

func WithAdmin() Option {
	return func(u *user) {
		u.isAdmin = true
	}
}

func WithPermissions(perms ...*permission.Permission) Option {
	return func(u *user) {
		u.permissions = append(u.permissions, perms...)
	}
}

func New(id uuid.UUID, role Role, opts ...Option) User {
	u := &user{
		id:   id,
		role: role,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Minimal returns the substitute context used when the permission source is
// unavailable and the deployment policy is "minimal": no permissions, not an
// admin.
func Minimal(id uuid.UUID) User {
	return New(id, RoleUnverified)
}

// Superuser returns the substitute context used by disabled-auth deployments.
func Superuser(id uuid.UUID) User {
	return New(id, RoleSuperuser, WithAdmin())
}

type user struct {
	id          uuid.UUID
	role        Role
	isAdmin     bool
	permissions []*permission.Permission
}

func (u *user) ID() uuid.UUID {
	return u.id
}

func (u *user) Role() Role {
	return u.role
}

func (u *user) IsAdmin() bool {
	return u.isAdmin
}

func (u *user) Permissions() []*permission.Permission {
	return u.permissions
}

func (u *user) Can(p *permission.Permission) bool {
	for _, granted := range u.permissions {
		if granted.Covers(p) {
			return true
		}
	}
	return false
}
