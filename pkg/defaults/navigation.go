package defaults

import (
	"github.com/deskflow/deskflow/modules/core/domain/aggregates/user"
	"github.com/deskflow/deskflow/pkg/sidebar"
)

// NavigationMap is the shipped coarse role filter. Elevated roles see the
// whole tree and go through per-entry requirements only; regular users are
// limited to the working sections and unverified accounts to the dashboard.
func NavigationMap() sidebar.RoleNavigationMap {
	return sidebar.RoleNavigationMap{
		user.RoleSuperuser: {sidebar.AllEntries},
		user.RoleAdmin:     {sidebar.AllEntries},
		user.RoleUser: {
			"dashboard",
			"correspondence",
			"dispatch",
			"payments",
		},
		user.RoleUnverified: {
			"dashboard",
		},
	}
}
