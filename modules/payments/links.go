package payments

import (
	"github.com/deskflow/deskflow/pkg/types"
)

var RegisterLink = types.NavigationItem{
	Key:          "payments.register",
	Name:         "NavigationLinks.PaymentRegister",
	Icon:         "invoice",
	Href:         "/payments/register",
	Requirements: []types.Requirement{types.RequireAction("payments", "register", "list")},
	Children:     nil,
}

var ControlLink = types.NavigationItem{
	Key:          "payments.control",
	Name:         "NavigationLinks.PaymentControl",
	Icon:         "shield-check",
	Href:         "/payments/control",
	Requirements: []types.Requirement{types.RequireAction("payments", "control", "list")},
	Children:     nil,
}

var PaymentsLink = types.NavigationItem{
	Key:  "payments",
	Name: "NavigationLinks.Payments",
	Icon: "invoice",
	Href: "#",
	Children: []types.NavigationItem{
		RegisterLink,
		ControlLink,
	},
}

var NavItems = []types.NavigationItem{
	PaymentsLink,
}
