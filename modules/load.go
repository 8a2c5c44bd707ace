package modules

import (
	"github.com/deskflow/deskflow/modules/core"
	"github.com/deskflow/deskflow/modules/correspondence"
	"github.com/deskflow/deskflow/modules/dispatch"
	"github.com/deskflow/deskflow/modules/payments"
	"github.com/deskflow/deskflow/pkg/application"
	"github.com/deskflow/deskflow/pkg/types"
)

var BuiltInModules = []application.Module{
	core.NewModule(),
	correspondence.NewModule(),
	dispatch.NewModule(),
	payments.NewModule(),
}

// NavLinks is the compiled-in navigation tree. It doubles as the fallback
// tree when the remote navigation source is unreachable.
var NavLinks = concatNavItems(
	core.NavItems,
	correspondence.NavItems,
	dispatch.NavItems,
	payments.NavItems,
)

// concatNavItems is slices.Concat, inlined because the build toolchain
// predates Go 1.22.
func concatNavItems(slices ...[]types.NavigationItem) []types.NavigationItem {
	size := 0
	for _, s := range slices {
		size += len(s)
	}
	out := make([]types.NavigationItem, 0, size)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
