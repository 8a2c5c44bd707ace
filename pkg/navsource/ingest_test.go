package navsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskflow/deskflow/modules/core/domain/aggregates/user"
	"github.com/deskflow/deskflow/pkg/types"
)

func boolPtr(b bool) *bool { return &b }

func TestDecodeEntries_Defaults(t *testing.T) {
	items := decodeEntries("", []entryDTO{
		{Key: "dash", Title: "Dashboard", Path: "/", Icon: "gauge"},
	})

	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, "dash", item.Key)
	assert.Equal(t, "Dashboard", item.Name)
	assert.False(t, item.Hidden)
	assert.False(t, item.Disabled)
	assert.True(t, item.Eligible())
	assert.Empty(t, item.Requirements)
}

func TestDecodeEntries_FlagsRespected(t *testing.T) {
	items := decodeEntries("", []entryDTO{
		{Key: "a", Visible: boolPtr(false)},
		{Key: "b", Enabled: boolPtr(false)},
		{Key: "c", Visible: boolPtr(true), Enabled: boolPtr(true)},
	})

	require.Len(t, items, 3)
	assert.False(t, items[0].Eligible())
	assert.False(t, items[1].Eligible())
	assert.True(t, items[2].Eligible())
}

func TestDecodeEntries_TypedRequirements(t *testing.T) {
	items := decodeEntries("", []entryDTO{
		{
			Key:         "users",
			Permissions: []string{"core.users:list"},
			Roles:       []string{"admin"},
			AdminOnly:   true,
		},
	})

	require.Len(t, items, 1)
	require.Len(t, items[0].Requirements, 3)
	assert.Equal(t, types.ModuleAction{Object: "core.users", Action: "list"}, items[0].Requirements[0])
	assert.Equal(t, types.RoleRequirement{Role: user.RoleAdmin}, items[0].Requirements[1])
	assert.Equal(t, types.AdminScope{}, items[0].Requirements[2])
}

func TestDecodeEntries_MalformedInputsDisableEntry(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		items := decodeEntries("", []entryDTO{{Title: "No key"}})
		require.Len(t, items, 1)
		assert.False(t, items[0].Eligible())
	})

	t.Run("unparseable permission does not silently pass", func(t *testing.T) {
		items := decodeEntries("", []entryDTO{
			{Key: "x", Permissions: []string{"notcanonical"}},
		})
		require.Len(t, items, 1)
		assert.False(t, items[0].Eligible())
	})

	t.Run("unknown role does not silently pass", func(t *testing.T) {
		items := decodeEntries("", []entryDTO{
			{Key: "x", Roles: []string{"moderator"}},
		})
		require.Len(t, items, 1)
		assert.False(t, items[0].Eligible())
	})
}

func TestDecodeEntries_KeysNamespacedByParent(t *testing.T) {
	items := decodeEntries("", []entryDTO{
		{
			Key: "docs",
			Children: []entryDTO{
				{Key: "inbox"},
				{Key: "archive", Children: []entryDTO{{Key: "inbox"}}},
			},
		},
	})

	require.Len(t, items, 1)
	docs := items[0]
	assert.Equal(t, "docs", docs.Key)
	assert.Equal(t, "docs.inbox", docs.Children[0].Key)
	assert.Equal(t, "docs.archive", docs.Children[1].Key)
	// The same leaf key under two groups yields distinct qualified keys.
	assert.Equal(t, "docs.archive.inbox", docs.Children[1].Children[0].Key)
}
