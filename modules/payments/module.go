package payments

import (
	"embed"

	"github.com/deskflow/deskflow/modules/payments/infrastructure/persistence"
	"github.com/deskflow/deskflow/modules/payments/presentation/controllers"
	"github.com/deskflow/deskflow/modules/payments/services"
	"github.com/deskflow/deskflow/pkg/application"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "payments"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	svc := services.NewRegisterService(persistence.NewPgPaymentRepository(app.DB()))
	app.RegisterServices(svc)
	app.RegisterControllers(controllers.NewRegisterController(svc))
	return nil
}
