package correspondence

import (
	"github.com/deskflow/deskflow/pkg/types"
)

var InboxLink = types.NavigationItem{
	Key:          "correspondence.inbox",
	Name:         "NavigationLinks.Inbox",
	Icon:         "envelope",
	Href:         "/correspondence/inbox",
	Requirements: []types.Requirement{types.RequireAction("correspondence", "incoming", "list")},
	Children:     nil,
}

var OutboxLink = types.NavigationItem{
	Key:          "correspondence.outbox",
	Name:         "NavigationLinks.Outbox",
	Icon:         "paper-plane-tilt",
	Href:         "/correspondence/outbox",
	Requirements: []types.Requirement{types.RequireAction("correspondence", "outgoing", "list")},
	Children:     nil,
}

var ArchiveLink = types.NavigationItem{
	Key:          "correspondence.archive",
	Name:         "NavigationLinks.Archive",
	Icon:         "archive",
	Href:         "/correspondence/archive",
	Requirements: []types.Requirement{types.RequireAction("correspondence", "archive", "list")},
	Children:     nil,
}

var CorrespondenceLink = types.NavigationItem{
	Key:  "correspondence",
	Name: "NavigationLinks.Correspondence",
	Icon: "envelope",
	Href: "#",
	Children: []types.NavigationItem{
		InboxLink,
		OutboxLink,
		ArchiveLink,
	},
}

var NavItems = []types.NavigationItem{
	CorrespondenceLink,
}
