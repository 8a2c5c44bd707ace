package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskflow/deskflow/modules/core/domain/aggregates/user"
	"github.com/deskflow/deskflow/pkg/application"
	"github.com/deskflow/deskflow/pkg/composables"
	"github.com/deskflow/deskflow/pkg/configuration"
	"github.com/deskflow/deskflow/pkg/eventbus"
	"github.com/deskflow/deskflow/pkg/menu"
	"github.com/deskflow/deskflow/pkg/navsource"
	"github.com/deskflow/deskflow/pkg/sidebar"
	"github.com/deskflow/deskflow/pkg/types"
)

type stubUserContext struct {
	user user.User
}

func (s stubUserContext) UserContext(ctx context.Context, id uuid.UUID) (user.User, error) {
	return s.user, nil
}

func newTestController(t *testing.T, u user.User) *NavigationController {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	bundle := application.LoadBundle()
	bundle.MustParseMessageFileBytes([]byte(`{"NavigationLinks": {"Dashboard": "Dashboard"}}`), "en.json")
	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(log),
		Logger:   log,
		Bundle:   bundle,
	})

	svc := menu.NewService(&menu.Options{
		Fallback: navsource.NewStaticSource("builtin", []types.NavigationItem{
			{Key: "dashboard", Name: "NavigationLinks.Dashboard", Href: "/", Icon: "gauge"},
			{Key: "admin", Name: "Administration", Requirements: []types.Requirement{types.AdminScope{}}},
		}),
		Users:  stubUserContext{user: u},
		Cache:  sidebar.NewCache(time.Minute),
		Policy: configuration.AuthFallbackMinimal,
		Logger: log,
	})
	return NewNavigationController(app, svc)
}

func TestNavigationController_Get(t *testing.T) {
	u := user.New(uuid.New(), user.RoleUser)
	controller := newTestController(t, u)

	router := mux.NewRouter()
	controller.Register(router)

	t.Run("unauthenticated request rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/navigation", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("filtered tree returned as JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/navigation", nil)
		req.Header.Set("Accept-Language", "en")
		req = req.WithContext(composables.WithUserID(req.Context(), u.ID()))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var items []NavItemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "dashboard", items[0].Key)
		assert.Equal(t, "Dashboard", items[0].Title)
		assert.Equal(t, "gauge", items[0].Icon)
	})
}

func TestNavigationController_Reload(t *testing.T) {
	u := user.New(uuid.New(), user.RoleUser, user.WithAdmin())
	controller := newTestController(t, u)

	router := mux.NewRouter()
	controller.Register(router)

	req := httptest.NewRequest(http.MethodPost, "/api/navigation/reload", nil)
	req = req.WithContext(composables.WithUserID(req.Context(), u.ID()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var items []NavItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}
