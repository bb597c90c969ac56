package portfolio

import (
	"github.com/katzedaze/portfolio/modules/portfolio/infrastructure/persistence"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/controllers"
	"github.com/katzedaze/portfolio/modules/portfolio/services"
	"github.com/katzedaze/portfolio/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Name() string {
	return "portfolio"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewSkillService(persistence.NewSkillRepository()),
		services.NewIntroductionService(persistence.NewIntroductionRepository()),
		services.NewCompanyService(persistence.NewCompanyRepository()),
		services.NewProjectService(persistence.NewProjectRepository()),
		services.NewProfileService(persistence.NewProfileRepository()),
	)
	app.RegisterControllers(
		controllers.NewSkillsController(app),
		controllers.NewIntroductionsController(app),
		controllers.NewCompaniesController(app),
		controllers.NewProjectsController(app),
		controllers.NewProfileController(app),
	)
	return nil
}
