package types

import (
	"github.com/deskflow/deskflow/modules/core/domain/aggregates/user"
	"github.com/deskflow/deskflow/modules/core/domain/entities/permission"
)

// Requirement is one typed access condition on a navigation item. The
// variants are decided at the ingestion boundary so that filtering never
// parses permission strings.
type Requirement interface {
	Satisfied(u user.User) bool
}

// ModuleAction requires a fine-grained permission on a module resource.
type ModuleAction struct {
	Object string
	Action string
}

func RequireAction(module, resource, action string) ModuleAction {
	return ModuleAction{
		Object: permission.ObjectName(module, resource),
		Action: permission.NormalizeAction(action),
	}
}

func (m ModuleAction) Satisfied(u user.User) bool {
	if u == nil {
		return false
	}
	return u.Can(permission.New(m.Object, m.Action))
}

// RoleRequirement requires the user's role to rank at least as high as Role.
type RoleRequirement struct {
	Role user.Role
}

func (r RoleRequirement) Satisfied(u user.User) bool {
	if u == nil {
		return false
	}
	return u.Role().AtLeast(r.Role)
}

// AdminScope requires the admin flag regardless of fine-grained permissions.
type AdminScope struct{}

func (AdminScope) Satisfied(u user.User) bool {
	return u != nil && u.IsAdmin()
}
