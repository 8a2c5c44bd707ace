package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	tmp := t.TempDir()
	requireWriteFile(t, filepath.Join(tmp, ".env.local"), "DESKFLOW_TEST_ENV_LOAD=ok\n")

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmp))

	_ = os.Unsetenv("DESKFLOW_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "ok", os.Getenv("DESKFLOW_TEST_ENV_LOAD"))
}

func TestNavigationOptions_Validate(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		opts := &NavigationOptions{
			SourceTimeout: 5 * time.Second,
			CacheTTL:      time.Minute,
			AuthFallback:  AuthFallbackMinimal,
		}
		assert.NoError(t, opts.Validate())
	})

	t.Run("unknown fallback policy rejected", func(t *testing.T) {
		opts := &NavigationOptions{
			SourceTimeout: time.Second,
			AuthFallback:  "everyone",
		}
		assert.Error(t, opts.Validate())
	})

	t.Run("non-positive timeout rejected", func(t *testing.T) {
		opts := &NavigationOptions{
			SourceTimeout: 0,
			AuthFallback:  AuthFallbackSuperuser,
		}
		assert.Error(t, opts.Validate())
	})
}

func TestAuthFallbackPolicy_IsValid(t *testing.T) {
	assert.True(t, AuthFallbackMinimal.IsValid())
	assert.True(t, AuthFallbackSuperuser.IsValid())
	assert.False(t, AuthFallbackPolicy("open").IsValid())
}

func requireWriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
