package main

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deskflow/deskflow/modules"
	corepersistence "github.com/deskflow/deskflow/modules/core/infrastructure/persistence"
	"github.com/deskflow/deskflow/modules/core/presentation/controllers"
	"github.com/deskflow/deskflow/pkg/application"
	"github.com/deskflow/deskflow/pkg/configuration"
	"github.com/deskflow/deskflow/pkg/defaults"
	"github.com/deskflow/deskflow/pkg/eventbus"
	"github.com/deskflow/deskflow/pkg/menu"
	"github.com/deskflow/deskflow/pkg/metrics"
	"github.com/deskflow/deskflow/pkg/middleware"
	"github.com/deskflow/deskflow/pkg/navsource"
	"github.com/deskflow/deskflow/pkg/server"
	"github.com/deskflow/deskflow/pkg/sidebar"
)

func main() {
	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("stack", string(debug.Stack())).Errorf("server panicked: %v", r)
			conf.Unload()
			panic(r)
		}
	}()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		logger.WithError(err).Fatal("failed to create database pool")
	}
	defer pool.Close()

	bus := eventbus.NewEventPublisher(logger)
	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: bus,
		Logger:   logger,
		Bundle:   application.LoadBundle(),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		logger.WithError(err).Fatal("failed to load modules")
	}
	app.RegisterNavItems(modules.NavLinks...)

	fallback := navsource.NewStaticSource("builtin", app.RawNavItems())
	var source navsource.Source
	if conf.Navigation.SourceURL != "" {
		source = navsource.NewHTTPSource(conf.Navigation.SourceURL, conf.Navigation.SourceTimeout)
	}

	menuService := menu.NewService(&menu.Options{
		Source:   source,
		Fallback: fallback,
		Users:    corepersistence.NewPgUserContextRepository(pool),
		Cache:    sidebar.NewCache(conf.Navigation.CacheTTL),
		RoleMap:  defaults.NavigationMap(),
		Policy:   conf.Navigation.AuthFallback,
		Logger:   logger,
	})
	menuService.RegisterEvents(bus)

	app.RegisterMiddleware(
		middleware.WithLogger(logger, conf),
		middleware.Authenticate(conf.UserIDHeader),
		middleware.NavItems(menuService),
	)
	app.RegisterControllers(
		controllers.NewNavigationController(app, menuService),
	)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	srv := server.NewHTTPServer(
		app,
		http.NotFoundHandler(),
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}),
	)
	logger.WithField("address", conf.SocketAddress).Info("starting server")
	if err := srv.Start(conf.SocketAddress); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
