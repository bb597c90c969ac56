package core

import (
	"github.com/katzedaze/portfolio/modules/core/infrastructure/persistence"
	"github.com/katzedaze/portfolio/modules/core/presentation/controllers"
	"github.com/katzedaze/portfolio/modules/core/services"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Name() string {
	return "core"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	userRepo := persistence.NewUserRepository()
	sessionRepo := persistence.NewSessionRepository()
	app.RegisterServices(
		services.NewAuthService(userRepo, sessionRepo),
		services.NewUserService(userRepo),
		services.NewUploadService(conf.Uploads.Path, conf.Uploads.MaxSize),
	)
	app.RegisterControllers(
		controllers.NewAuthController(app),
		controllers.NewAccountController(app),
		controllers.NewUploadController(app, conf.Uploads.MaxSize),
		controllers.NewStaticController(conf.Uploads.Path),
	)
	return nil
}
