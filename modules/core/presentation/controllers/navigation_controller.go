package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/deskflow/deskflow/pkg/application"
	"github.com/deskflow/deskflow/pkg/composables"
	"github.com/deskflow/deskflow/pkg/menu"
	"github.com/deskflow/deskflow/pkg/sidebar"
	"github.com/deskflow/deskflow/pkg/types"
)

// NavItemResponse is the wire shape the SPA menu renderer consumes. Access
// requirements never leave the server; the renderer only sees what survived
// filtering.
type NavItemResponse struct {
	Key      string            `json:"key"`
	Title    string            `json:"title"`
	Href     string            `json:"href,omitempty"`
	Icon     string            `json:"icon,omitempty"`
	Children []NavItemResponse `json:"children,omitempty"`
}

type NavigationController struct {
	app application.Application
	svc *menu.Service
}

func NewNavigationController(app application.Application, svc *menu.Service) *NavigationController {
	return &NavigationController{app: app, svc: svc}
}

func (c *NavigationController) Key() string {
	return "/api/navigation"
}

func (c *NavigationController) Register(r *mux.Router) {
	r.HandleFunc("/api/navigation", c.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/navigation/reload", c.Reload).Methods(http.MethodPost)
}

func (c *NavigationController) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := composables.UseUserID(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "user identity required")
		return
	}

	// The navigation middleware may have computed the tree already.
	items, err := composables.UseNavItems(r.Context())
	if err != nil {
		items = c.svc.Menu(r.Context(), userID)
	}

	writeJSON(w, http.StatusOK, c.present(r, items))
}

func (c *NavigationController) Reload(w http.ResponseWriter, r *http.Request) {
	userID, err := composables.UseUserID(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "user identity required")
		return
	}

	c.app.EventPublisher().Publish(&menu.PermissionsReloadedEvent{UserID: userID})
	items := c.svc.Refresh(r.Context(), userID)

	writeJSON(w, http.StatusOK, c.present(r, items))
}

func (c *NavigationController) present(r *http.Request, items []types.NavigationItem) []NavItemResponse {
	localizer := i18n.NewLocalizer(c.app.Bundle(), r.Header.Get("Accept-Language"))
	return c.toResponse(localizer, items)
}

func (c *NavigationController) toResponse(localizer *i18n.Localizer, items []types.NavigationItem) []NavItemResponse {
	out := make([]NavItemResponse, 0, len(items))
	for _, item := range items {
		title, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: item.Name})
		if err != nil {
			// Remote trees carry literal titles rather than message IDs.
			title = item.Name
		}
		icon := ""
		if item.Icon != "" {
			icon = string(sidebar.ResolveIcon(item.Icon))
		}
		out = append(out, NavItemResponse{
			Key:      item.Key,
			Title:    title,
			Href:     item.Href,
			Icon:     icon,
			Children: c.toResponse(localizer, item.Children),
		})
	}
	return out
}
