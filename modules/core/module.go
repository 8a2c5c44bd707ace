package core

import (
	"embed"

	"github.com/deskflow/deskflow/modules/core/presentation/controllers"
	"github.com/deskflow/deskflow/pkg/application"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "core"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterControllers(
		controllers.NewHealthController(),
	)
	return nil
}
