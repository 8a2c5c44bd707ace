package application

import (
	"embed"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/deskflow/deskflow/pkg/eventbus"
	"github.com/deskflow/deskflow/pkg/types"
)

// Controller is one HTTP surface registered on the router. Key must be
// stable and unique; re-registering a key replaces the controller.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module is a vertical feature slice that contributes controllers, services,
// locale files and navigation items to the application.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	DB() *pgxpool.Pool
	EventPublisher() eventbus.EventBus
	Bundle() *i18n.Bundle

	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	NavItems(localizer *i18n.Localizer) []types.NavigationItem
	RawNavItems() []types.NavigationItem

	RegisterControllers(controllers ...Controller)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterNavItems(items ...types.NavigationItem)
	RegisterLocaleFiles(fs ...*embed.FS)
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
}
