package types

import (
	"github.com/deskflow/deskflow/modules/core/domain/aggregates/user"
)

// NavigationItem is one node of the application's menu tree: a link when
// Children is empty, a group header otherwise. Trees are immutable once
// built; every filter pass reconstructs a fresh tree.
type NavigationItem struct {
	// Key uniquely identifies the item across the whole tree. Keys of
	// ingested items are namespaced by their parent key.
	Key      string
	Name     string
	Href     string
	Icon     string
	Hidden   bool
	Disabled bool

	Requirements []Requirement
	Children     []NavigationItem
}

// Eligible reports whether the item may appear at all, before any permission
// check. A missing key marks a malformed item, which is treated the same as
// a hidden one rather than failing the whole tree.
func (n NavigationItem) Eligible() bool {
	return n.Key != "" && !n.Hidden && !n.Disabled
}

func (n NavigationItem) IsGroup() bool {
	return len(n.Children) > 0
}

// HasAccess reports whether every requirement on the item is satisfied by
// the given context. Items without requirements are visible to anyone who
// can see their parent.
func (n NavigationItem) HasAccess(u user.User) bool {
	for _, req := range n.Requirements {
		if !req.Satisfied(u) {
			return false
		}
	}
	return true
}
