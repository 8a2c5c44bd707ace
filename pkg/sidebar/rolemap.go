package sidebar

import (
	"slices"

	"github.com/deskflow/deskflow/modules/core/domain/aggregates/user"
	"github.com/deskflow/deskflow/pkg/types"
)

// AllEntries designates that a role sees every top-level entry, making the
// pre-filter a no-op for that role.
const AllEntries = "*"

// RoleNavigationMap is an optional coarse pre-filter applied before the
// per-entry permission checks: for each role, an allow-list of top-level
// entry keys. Roles missing from the map see nothing at the top level; a
// nil map disables the layer entirely.
type RoleNavigationMap map[user.Role][]string

// Apply returns the top-level items allowed for the role. Nested items are
// untouched; fine-grained filtering happens afterwards.
func (m RoleNavigationMap) Apply(items []types.NavigationItem, role user.Role) []types.NavigationItem {
	if m == nil {
		return items
	}
	allowed, ok := m[role]
	if !ok {
		return []types.NavigationItem{}
	}
	if slices.Contains(allowed, AllEntries) {
		return items
	}
	filtered := make([]types.NavigationItem, 0, len(items))
	for _, item := range items {
		if slices.Contains(allowed, item.Key) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
