package permission

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("canonical form", func(t *testing.T) {
		p, err := Parse("correspondence.letters:list")
		require.NoError(t, err)
		assert.Equal(t, "correspondence.letters", p.Object)
		assert.Equal(t, "list", p.Action)
	})

	t.Run("missing action means wildcard", func(t *testing.T) {
		p, err := Parse("payments.orders")
		require.NoError(t, err)
		assert.Equal(t, ActionWildcard, p.Action)
	})

	t.Run("case and whitespace normalized", func(t *testing.T) {
		p, err := Parse("  Core.Users:Read ")
		require.NoError(t, err)
		assert.Equal(t, "core.users:read", p.String())
	})

	t.Run("malformed inputs rejected", func(t *testing.T) {
		for _, s := range []string{"", "users:list", "core.users:"} {
			_, err := Parse(s)
			assert.True(t, errors.Is(err, ErrMalformed), "expected ErrMalformed for %q", s)
		}
	})
}

func TestCovers(t *testing.T) {
	grant := New("core.users", "list")
	assert.True(t, grant.Covers(New("core.users", "list")))
	assert.False(t, grant.Covers(New("core.users", "delete")))
	assert.False(t, grant.Covers(New("core.roles", "list")))
	assert.False(t, grant.Covers(nil))

	wildcard := New("core.users", "")
	assert.True(t, wildcard.Covers(New("core.users", "delete")))
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "core.users", ObjectName("CORE", "Users"))
	assert.Equal(t, "global.resource", ObjectName("", ""))
}

func TestNormalizeAction(t *testing.T) {
	assert.Equal(t, "edit", NormalizeAction(" Edit "))
	assert.Equal(t, "*", NormalizeAction(""))
}
