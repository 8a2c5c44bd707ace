package core

import (
	"github.com/deskflow/deskflow/modules/core/domain/aggregates/user"
	"github.com/deskflow/deskflow/pkg/types"
)

var DashboardLink = types.NavigationItem{
	Key:      "dashboard",
	Name:     "NavigationLinks.Dashboard",
	Icon:     "gauge",
	Href:     "/",
	Children: nil,
}

var UsersLink = types.NavigationItem{
	Key:          "admin.users",
	Name:         "NavigationLinks.Users",
	Href:         "/users",
	Requirements: []types.Requirement{types.RequireAction("core", "users", "list")},
	Children:     nil,
}

var RolesLink = types.NavigationItem{
	Key:          "admin.roles",
	Name:         "NavigationLinks.Roles",
	Href:         "/roles",
	Requirements: []types.Requirement{types.RequireAction("core", "roles", "list")},
	Children:     nil,
}

var GroupsLink = types.NavigationItem{
	Key:          "admin.groups",
	Name:         "NavigationLinks.Groups",
	Href:         "/groups",
	Requirements: []types.Requirement{types.RequireAction("core", "groups", "list")},
	Children:     nil,
}

var SettingsLink = types.NavigationItem{
	Key:      "admin.settings",
	Name:     "NavigationLinks.Settings",
	Href:     "/settings",
	Children: nil,
}

var AdministrationLink = types.NavigationItem{
	Key:          "admin",
	Name:         "NavigationLinks.Administration",
	Icon:         "air-traffic-control",
	Href:         "#",
	Requirements: []types.Requirement{types.RoleRequirement{Role: user.RoleAdmin}},
	Children: []types.NavigationItem{
		UsersLink,
		RolesLink,
		GroupsLink,
		SettingsLink,
	},
}

var NavItems = []types.NavigationItem{
	DashboardLink,
	AdministrationLink,
}
