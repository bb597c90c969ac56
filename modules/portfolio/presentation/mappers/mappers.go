package mappers

import (
	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/company"
	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/introduction"
	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/profile"
	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/project"
	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/skill"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/viewmodels"
)

// optString maps an unset field to JSON null instead of "".
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func SkillToViewModel(s skill.Skill) viewmodels.Skill {
	return viewmodels.Skill{
		ID:                s.ID().String(),
		Name:              s.Name(),
		Category:          string(s.Category()),
		Proficiency:       s.Proficiency(),
		YearsOfExperience: s.YearsOfExperience(),
		DisplayOrder:      s.DisplayOrder(),
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}
}

func IntroductionToViewModel(i introduction.Introduction) viewmodels.Introduction {
	return viewmodels.Introduction{
		ID:           i.ID().String(),
		Title:        i.Title(),
		Content:      i.Content(),
		DisplayOrder: i.DisplayOrder(),
		CreatedAt:    i.CreatedAt(),
		UpdatedAt:    i.UpdatedAt(),
	}
}

func CompanyToViewModel(c company.Company) viewmodels.Company {
	return viewmodels.Company{
		ID:           c.ID().String(),
		Name:         c.Name(),
		Industry:     optString(c.Industry()),
		Description:  optString(c.Description()),
		JoinDate:     c.JoinDate(),
		LeaveDate:    c.LeaveDate(),
		DisplayOrder: c.DisplayOrder(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func ProjectToViewModel(p project.Project, joined *company.Company) viewmodels.Project {
	var companyID *string
	if p.CompanyID() != nil {
		id := p.CompanyID().String()
		companyID = &id
	}
	var companyVM *viewmodels.Company
	if joined != nil {
		vm := CompanyToViewModel(*joined)
		companyVM = &vm
	}
	return viewmodels.Project{
		ID:               p.ID().String(),
		CompanyID:        companyID,
		Title:            p.Title(),
		StartDate:        p.StartDate(),
		EndDate:          p.EndDate(),
		Technologies:     p.Technologies(),
		Description:      p.Description(),
		Responsibilities: optString(p.Responsibilities()),
		Achievements:     optString(p.Achievements()),
		DisplayOrder:     p.DisplayOrder(),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
		Company:          companyVM,
	}
}

func ProfileToViewModel(p profile.Profile) viewmodels.Profile {
	return viewmodels.Profile{
		ID:          p.ID().String(),
		UserID:      p.UserID(),
		Name:        p.Name(),
		Email:       p.Email(),
		Phone:       p.Phone(),
		PostalCode:  optString(p.PostalCode()),
		Address:     optString(p.Address()),
		Website:     optString(p.Website()),
		GithubURL:   optString(p.GithubURL()),
		TwitterURL:  optString(p.TwitterURL()),
		LinkedinURL: optString(p.LinkedinURL()),
		Bio:         optString(p.Bio()),
		AvatarURL:   optString(p.AvatarURL()),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
