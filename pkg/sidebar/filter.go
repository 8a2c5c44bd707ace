package sidebar

import (
	"github.com/deskflow/deskflow/modules/core/domain/aggregates/user"
	"github.com/deskflow/deskflow/pkg/types"
)

// Filter returns the subset of items the given context may see. It is a pure
// transformation: the input tree is never modified, identical inputs yield
// structurally identical output, and a nil context sees nothing.
//
// Per item, visibility and enablement act as a kill-switch before any
// permission check; admins and superusers then bypass requirement checks
// entirely; group headers that end up with no surviving children are
// dropped.
func Filter(items []types.NavigationItem, u user.User) []types.NavigationItem {
	if u == nil {
		return []types.NavigationItem{}
	}
	bypass := u.IsAdmin() || u.Role() == user.RoleSuperuser
	return filterItems(items, u, bypass)
}

func filterItems(items []types.NavigationItem, u user.User, bypass bool) []types.NavigationItem {
	filtered := make([]types.NavigationItem, 0, len(items))
	for _, item := range items {
		if !item.Eligible() {
			continue
		}
		if !bypass && !item.HasAccess(u) {
			continue
		}
		if item.IsGroup() {
			children := filterItems(item.Children, u, bypass)
			if len(children) == 0 {
				continue
			}
			filtered = append(filtered, rebuild(item, children))
		} else {
			filtered = append(filtered, rebuild(item, nil))
		}
	}
	return filtered
}

// PublicOnly returns the eligible items carrying no requirements at all. It
// is the degradation rule for the case where filtering removed everything
// from a non-empty tree: the user gets the inherently public entries rather
// than a blank menu.
func PublicOnly(items []types.NavigationItem) []types.NavigationItem {
	filtered := make([]types.NavigationItem, 0, len(items))
	for _, item := range items {
		if !item.Eligible() || len(item.Requirements) > 0 {
			continue
		}
		if item.IsGroup() {
			children := PublicOnly(item.Children)
			if len(children) == 0 {
				continue
			}
			filtered = append(filtered, rebuild(item, children))
		} else {
			filtered = append(filtered, rebuild(item, nil))
		}
	}
	return filtered
}

func rebuild(item types.NavigationItem, children []types.NavigationItem) types.NavigationItem {
	return types.NavigationItem{
		Key:          item.Key,
		Name:         item.Name,
		Href:         item.Href,
		Icon:         item.Icon,
		Hidden:       item.Hidden,
		Disabled:     item.Disabled,
		Requirements: item.Requirements,
		Children:     children,
	}
}
