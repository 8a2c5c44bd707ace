package navsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Fetch(t *testing.T) {
	var gotRefresh string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRefresh = r.URL.Query().Get("refresh")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"version": "2026-08-30",
			"items": [
				{"key": "dash", "title": "Dashboard", "path": "/"},
				{"key": "docs", "title": "Correspondence", "children": [
					{"key": "inbox", "title": "Inbox", "path": "/docs/inbox", "permissions": ["correspondence.letters:list"]}
				]}
			]
		}`))
	}))
	defer srv.Close()

	source := NewHTTPSource(srv.URL, time.Second)

	tree, err := source.Fetch(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, gotRefresh)
	assert.Equal(t, "2026-08-30", tree.Version)
	require.Len(t, tree.Items, 2)
	assert.Equal(t, "docs.inbox", tree.Items[1].Children[0].Key)

	_, err = source.Fetch(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "1", gotRefresh)
}

func TestHTTPSource_Fetch_Unavailable(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background(), false)
		assert.True(t, errors.Is(err, ErrSourceUnavailable))
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		_, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background(), false)
		assert.True(t, errors.Is(err, ErrSourceUnavailable))
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background(), false)
		assert.True(t, errors.Is(err, ErrSourceUnavailable))
	})
}

func TestStaticSource_Fetch(t *testing.T) {
	source := NewStaticSource("builtin", decodeEntries("", []entryDTO{{Key: "dash"}}))

	tree, err := source.Fetch(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "builtin", tree.Version)
	require.Len(t, tree.Items, 1)
	assert.Equal(t, "dash", tree.Items[0].Key)
}
