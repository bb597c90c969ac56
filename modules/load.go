package modules

import (
	"github.com/katzedaze/portfolio/modules/core"
	"github.com/katzedaze/portfolio/modules/portfolio"
	"github.com/katzedaze/portfolio/pkg/application"
)

var BuiltInModules = []application.Module{
	core.NewModule(),
	portfolio.NewModule(),
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
