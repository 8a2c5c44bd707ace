package navsource

import (
	"github.com/deskflow/deskflow/modules/core/domain/aggregates/user"
	"github.com/deskflow/deskflow/modules/core/domain/entities/permission"
	"github.com/deskflow/deskflow/pkg/types"
)

// entryDTO is the wire shape of one navigation entry as served by the
// navigation endpoint. Visible and Enabled default to true when absent.
type entryDTO struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Path        string     `json:"path"`
	Icon        string     `json:"icon"`
	Visible     *bool      `json:"visible"`
	Enabled     *bool      `json:"enabled"`
	Permissions []string   `json:"permissions"`
	Roles       []string   `json:"roles"`
	AdminOnly   bool       `json:"adminOnly"`
	Children    []entryDTO `json:"children"`
}

type treeDTO struct {
	Version string     `json:"version"`
	Items   []entryDTO `json:"items"`
}

// decodeEntries converts raw entries into the typed tree. All string-shaped
// access rules are decided here, once: a permission or role string that does
// not parse marks its entry ineligible instead of silently passing, and a
// missing key does the same rather than failing the whole tree. Child keys
// are namespaced by their parent so keys stay unique tree-wide.
func decodeEntries(parentKey string, dtos []entryDTO) []types.NavigationItem {
	items := make([]types.NavigationItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, decodeEntry(parentKey, dto))
	}
	return items
}

func decodeEntry(parentKey string, dto entryDTO) types.NavigationItem {
	item := types.NavigationItem{
		Key:      qualifyKey(parentKey, dto.Key),
		Name:     dto.Title,
		Href:     dto.Path,
		Icon:     dto.Icon,
		Hidden:   dto.Visible != nil && !*dto.Visible,
		Disabled: dto.Enabled != nil && !*dto.Enabled,
	}

	for _, raw := range dto.Permissions {
		parsed, err := permission.Parse(raw)
		if err != nil {
			item.Disabled = true
			continue
		}
		item.Requirements = append(item.Requirements, types.ModuleAction{
			Object: parsed.Object,
			Action: parsed.Action,
		})
	}
	for _, raw := range dto.Roles {
		role, err := user.NewRole(raw)
		if err != nil {
			item.Disabled = true
			continue
		}
		item.Requirements = append(item.Requirements, types.RoleRequirement{Role: role})
	}
	if dto.AdminOnly {
		item.Requirements = append(item.Requirements, types.AdminScope{})
	}

	item.Children = decodeEntries(item.Key, dto.Children)
	return item
}

func qualifyKey(parentKey, key string) string {
	if key == "" {
		return ""
	}
	if parentKey == "" {
		return key
	}
	return parentKey + "." + key
}
