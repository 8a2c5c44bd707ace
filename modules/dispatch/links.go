package dispatch

import (
	"github.com/deskflow/deskflow/pkg/types"
)

var OrdersLink = types.NavigationItem{
	Key:          "dispatch.orders",
	Name:         "NavigationLinks.DispatchOrders",
	Icon:         "truck",
	Href:         "/dispatch/orders",
	Requirements: []types.Requirement{types.RequireAction("dispatch", "orders", "list")},
	Children:     nil,
}

var ScheduleLink = types.NavigationItem{
	Key:          "dispatch.schedule",
	Name:         "NavigationLinks.DispatchSchedule",
	Icon:         "calendar-dots",
	Href:         "/dispatch/schedule",
	Requirements: []types.Requirement{types.RequireAction("dispatch", "schedule", "list")},
	Children:     nil,
}

var ContractorsLink = types.NavigationItem{
	Key:          "dispatch.contractors",
	Name:         "NavigationLinks.Contractors",
	Icon:         "users-three",
	Href:         "/dispatch/contractors",
	Requirements: []types.Requirement{types.RequireAction("dispatch", "contractors", "list")},
	Children:     nil,
}

var DispatchLink = types.NavigationItem{
	Key:  "dispatch",
	Name: "NavigationLinks.Dispatch",
	Icon: "truck",
	Href: "#",
	Children: []types.NavigationItem{
		OrdersLink,
		ScheduleLink,
		ContractorsLink,
	},
}

var NavItems = []types.NavigationItem{
	DispatchLink,
}
