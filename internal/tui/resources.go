package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katzedaze/portfolio/pkg/apiclient"
	"github.com/katzedaze/portfolio/pkg/crud"
)

// Client-side shapes of the admin resources. Dates travel as strings so the
// form can edit them directly.

type SkillItem struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Proficiency       string  `json:"proficiency"`
	YearsOfExperience float64 `json:"yearsOfExperience"`
	DisplayOrder      int     `json:"displayOrder"`
}

func (s SkillItem) ItemID() string        { return s.ID }
func (s SkillItem) ItemDisplayOrder() int { return s.DisplayOrder }

type SkillForm struct {
	Name              string
	Category          string
	Proficiency       string
	YearsOfExperience string
	DisplayOrder      int
}

type IntroductionItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	DisplayOrder int    `json:"displayOrder"`
}

func (i IntroductionItem) ItemID() string        { return i.ID }
func (i IntroductionItem) ItemDisplayOrder() int { return i.DisplayOrder }

type IntroductionForm struct {
	Title        string
	Content      string
	DisplayOrder int
}

type CompanyItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Industry     *string `json:"industry"`
	Description  *string `json:"description"`
	JoinDate     *string `json:"joinDate"`
	LeaveDate    *string `json:"leaveDate"`
	DisplayOrder int     `json:"displayOrder"`
}

func (c CompanyItem) ItemID() string        { return c.ID }
func (c CompanyItem) ItemDisplayOrder() int { return c.DisplayOrder }

type CompanyForm struct {
	Name         string
	Industry     string
	Description  string
	JoinDate     string
	LeaveDate    string
	DisplayOrder int
}

type ProjectItem struct {
	ID               string   `json:"id"`
	CompanyID        *string  `json:"companyId"`
	Title            string   `json:"title"`
	StartDate        string   `json:"startDate"`
	EndDate          *string  `json:"endDate"`
	Technologies     []string `json:"technologies"`
	Description      string   `json:"description"`
	Responsibilities *string  `json:"responsibilities"`
	Achievements     *string  `json:"achievements"`
	DisplayOrder     int      `json:"displayOrder"`
}

func (p ProjectItem) ItemID() string        { return p.ID }
func (p ProjectItem) ItemDisplayOrder() int { return p.DisplayOrder }

type ProjectForm struct {
	Title            string
	CompanyID        string
	StartDate        string
	EndDate          string
	Technologies     string
	Description      string
	Responsibilities string
	Achievements     string
	DisplayOrder     int
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// dateOnly shortens an RFC 3339 timestamp to its date part for editing.
func dateOnly(s *string) string {
	v := deref(s)
	if len(v) > 10 {
		return v[:10]
	}
	return v
}

func optPayload(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func floatOrZero(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func newSkillsScreen(client *apiclient.Client) *ResourceScreen[SkillItem, SkillForm] {
	return NewResourceScreen(client, ResourceConfig[SkillItem, SkillForm]{
		Title: "スキル",
		Path:  "/api/skills",
		Messages: crud.Messages{
			Create:        "スキルを追加しました",
			Update:        "スキルを更新しました",
			Delete:        "スキルを削除しました",
			DeleteConfirm: "本当に削除しますか？",
		},
		InitialForm: SkillForm{Category: "frontend", Proficiency: "初級"},
		ItemToForm: func(item SkillItem) SkillForm {
			return SkillForm{
				Name:              item.Name,
				Category:          item.Category,
				Proficiency:       item.Proficiency,
				YearsOfExperience: strconv.FormatFloat(item.YearsOfExperience, 'f', -1, 64),
				DisplayOrder:      item.DisplayOrder,
			}
		},
		FormToPayload: func(form SkillForm, isEditing bool, items []SkillItem) map[string]any {
			order := len(items)
			if isEditing {
				order = form.DisplayOrder
			}
			return map[string]any{
				"name":              form.Name,
				"category":          form.Category,
				"proficiency":       form.Proficiency,
				"yearsOfExperience": floatOrZero(form.YearsOfExperience),
				"displayOrder":      order,
			}
		},
		UpdateData: func(item SkillItem) map[string]any {
			return map[string]any{
				"name":              item.Name,
				"category":          item.Category,
				"proficiency":       item.Proficiency,
				"yearsOfExperience": item.YearsOfExperience,
			}
		},
		Fields: []Field[SkillForm]{
			{Label: "名前", Get: func(f SkillForm) string { return f.Name },
				Set: func(f SkillForm, v string) SkillForm { f.Name = v; return f }},
			{Label: "カテゴリ", Placeholder: "frontend / backend / infrastructure / others",
				Get: func(f SkillForm) string { return f.Category },
				Set: func(f SkillForm, v string) SkillForm { f.Category = v; return f }},
			{Label: "習熟度", Get: func(f SkillForm) string { return f.Proficiency },
				Set: func(f SkillForm, v string) SkillForm { f.Proficiency = v; return f }},
			{Label: "経験年数", Placeholder: "1.5",
				Get: func(f SkillForm) string { return f.YearsOfExperience },
				Set: func(f SkillForm, v string) SkillForm { f.YearsOfExperience = v; return f }},
		},
		RowText: func(item SkillItem) string {
			return fmt.Sprintf("%s  [%s]  %s  %.1f年", item.Name, item.Category, item.Proficiency, item.YearsOfExperience)
		},
	})
}

func newIntroductionsScreen(client *apiclient.Client) *ResourceScreen[IntroductionItem, IntroductionForm] {
	return NewResourceScreen(client, ResourceConfig[IntroductionItem, IntroductionForm]{
		Title: "自己PR",
		Path:  "/api/introduction",
		Messages: crud.Messages{
			Create:        "自己PRを追加しました",
			Update:        "自己PRを更新しました",
			Delete:        "自己PRを削除しました",
			DeleteConfirm: "本当に削除しますか？",
		},
		InitialForm: IntroductionForm{},
		ItemToForm: func(item IntroductionItem) IntroductionForm {
			return IntroductionForm{
				Title:        item.Title,
				Content:      item.Content,
				DisplayOrder: item.DisplayOrder,
			}
		},
		FormToPayload: func(form IntroductionForm, isEditing bool, items []IntroductionItem) map[string]any {
			order := len(items)
			if isEditing {
				order = form.DisplayOrder
			}
			return map[string]any{
				"title":        form.Title,
				"content":      form.Content,
				"displayOrder": order,
			}
		},
		UpdateData: func(item IntroductionItem) map[string]any {
			return map[string]any{
				"title":   item.Title,
				"content": item.Content,
			}
		},
		Fields: []Field[IntroductionForm]{
			{Label: "タイトル", Get: func(f IntroductionForm) string { return f.Title },
				Set: func(f IntroductionForm, v string) IntroductionForm { f.Title = v; return f }},
			{Label: "内容", Get: func(f IntroductionForm) string { return f.Content },
				Set: func(f IntroductionForm, v string) IntroductionForm { f.Content = v; return f }},
		},
		RowText: func(item IntroductionItem) string {
			return item.Title
		},
	})
}

func newCompaniesScreen(client *apiclient.Client) *ResourceScreen[CompanyItem, CompanyForm] {
	return NewResourceScreen(client, ResourceConfig[CompanyItem, CompanyForm]{
		Title: "企業",
		Path:  "/api/companies",
		Messages: crud.Messages{
			Create:        "企業を追加しました",
			Update:        "企業情報を更新しました",
			Delete:        "企業を削除しました",
			DeleteConfirm: "本当に削除しますか？",
		},
		InitialForm: CompanyForm{},
		ItemToForm: func(item CompanyItem) CompanyForm {
			return CompanyForm{
				Name:         item.Name,
				Industry:     deref(item.Industry),
				Description:  deref(item.Description),
				JoinDate:     dateOnly(item.JoinDate),
				LeaveDate:    dateOnly(item.LeaveDate),
				DisplayOrder: item.DisplayOrder,
			}
		},
		FormToPayload: func(form CompanyForm, isEditing bool, items []CompanyItem) map[string]any {
			order := len(items)
			if isEditing {
				order = form.DisplayOrder
			}
			return map[string]any{
				"name":         form.Name,
				"industry":     form.Industry,
				"description":  form.Description,
				"joinDate":     optPayload(form.JoinDate),
				"leaveDate":    optPayload(form.LeaveDate),
				"displayOrder": order,
			}
		},
		UpdateData: func(item CompanyItem) map[string]any {
			return map[string]any{
				"name":        item.Name,
				"industry":    deref(item.Industry),
				"description": deref(item.Description),
				"joinDate":    optPayload(dateOnly(item.JoinDate)),
				"leaveDate":   optPayload(dateOnly(item.LeaveDate)),
			}
		},
		Fields: []Field[CompanyForm]{
			{Label: "企業名", Get: func(f CompanyForm) string { return f.Name },
				Set: func(f CompanyForm, v string) CompanyForm { f.Name = v; return f }},
			{Label: "業界", Get: func(f CompanyForm) string { return f.Industry },
				Set: func(f CompanyForm, v string) CompanyForm { f.Industry = v; return f }},
			{Label: "概要", Get: func(f CompanyForm) string { return f.Description },
				Set: func(f CompanyForm, v string) CompanyForm { f.Description = v; return f }},
			{Label: "入社日", Placeholder: "2020-04-01",
				Get: func(f CompanyForm) string { return f.JoinDate },
				Set: func(f CompanyForm, v string) CompanyForm { f.JoinDate = v; return f }},
			{Label: "退社日", Placeholder: "2023-03-31",
				Get: func(f CompanyForm) string { return f.LeaveDate },
				Set: func(f CompanyForm, v string) CompanyForm { f.LeaveDate = v; return f }},
		},
		RowText: func(item CompanyItem) string {
			period := dateOnly(item.JoinDate)
			if period != "" {
				period += " 〜 " + dateOnly(item.LeaveDate)
			}
			return strings.TrimSpace(fmt.Sprintf("%s  %s  %s", item.Name, deref(item.Industry), period))
		},
	})
}

func newProjectsScreen(client *apiclient.Client) *ResourceScreen[ProjectItem, ProjectForm] {
	return NewResourceScreen(client, ResourceConfig[ProjectItem, ProjectForm]{
		Title: "プロジェクト",
		Path:  "/api/projects",
		Messages: crud.Messages{
			Create:        "プロジェクトを追加しました",
			Update:        "プロジェクトを更新しました",
			Delete:        "プロジェクトを削除しました",
			DeleteConfirm: "本当に削除しますか？",
		},
		InitialForm: ProjectForm{},
		ItemToForm: func(item ProjectItem) ProjectForm {
			return ProjectForm{
				Title:            item.Title,
				CompanyID:        deref(item.CompanyID),
				StartDate:        dateOnly(&item.StartDate),
				EndDate:          dateOnly(item.EndDate),
				Technologies:     strings.Join(item.Technologies, ", "),
				Description:      item.Description,
				Responsibilities: deref(item.Responsibilities),
				Achievements:     deref(item.Achievements),
				DisplayOrder:     item.DisplayOrder,
			}
		},
		FormToPayload: func(form ProjectForm, isEditing bool, items []ProjectItem) map[string]any {
			order := len(items)
			if isEditing {
				order = form.DisplayOrder
			}
			return map[string]any{
				"title":            form.Title,
				"companyId":        optPayload(form.CompanyID),
				"startDate":        form.StartDate,
				"endDate":          optPayload(form.EndDate),
				"technologies":     splitTechnologies(form.Technologies),
				"description":      form.Description,
				"responsibilities": form.Responsibilities,
				"achievements":     form.Achievements,
				"displayOrder":     order,
			}
		},
		UpdateData: func(item ProjectItem) map[string]any {
			return map[string]any{
				"title":            item.Title,
				"companyId":        item.CompanyID,
				"startDate":        dateOnly(&item.StartDate),
				"endDate":          optPayload(dateOnly(item.EndDate)),
				"technologies":     item.Technologies,
				"description":      item.Description,
				"responsibilities": deref(item.Responsibilities),
				"achievements":     deref(item.Achievements),
			}
		},
		Fields: []Field[ProjectForm]{
			{Label: "タイトル", Get: func(f ProjectForm) string { return f.Title },
				Set: func(f ProjectForm, v string) ProjectForm { f.Title = v; return f }},
			{Label: "企業ID", Placeholder: "空欄で未所属",
				Get: func(f ProjectForm) string { return f.CompanyID },
				Set: func(f ProjectForm, v string) ProjectForm { f.CompanyID = v; return f }},
			{Label: "開始日", Placeholder: "2024-01-01",
				Get: func(f ProjectForm) string { return f.StartDate },
				Set: func(f ProjectForm, v string) ProjectForm { f.StartDate = v; return f }},
			{Label: "終了日", Placeholder: "空欄で継続中",
				Get: func(f ProjectForm) string { return f.EndDate },
				Set: func(f ProjectForm, v string) ProjectForm { f.EndDate = v; return f }},
			{Label: "技術 (カンマ区切り)", Placeholder: "Go, PostgreSQL",
				Get: func(f ProjectForm) string { return f.Technologies },
				Set: func(f ProjectForm, v string) ProjectForm { f.Technologies = v; return f }},
			{Label: "概要", Get: func(f ProjectForm) string { return f.Description },
				Set: func(f ProjectForm, v string) ProjectForm { f.Description = v; return f }},
			{Label: "担当", Get: func(f ProjectForm) string { return f.Responsibilities },
				Set: func(f ProjectForm, v string) ProjectForm { f.Responsibilities = v; return f }},
			{Label: "成果", Get: func(f ProjectForm) string { return f.Achievements },
				Set: func(f ProjectForm, v string) ProjectForm { f.Achievements = v; return f }},
		},
		RowText: func(item ProjectItem) string {
			end := dateOnly(item.EndDate)
			if end == "" {
				end = "現在"
			}
			return fmt.Sprintf("%s  %s 〜 %s", item.Title, dateOnly(&item.StartDate), end)
		},
	})
}

func splitTechnologies(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
