package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/skill"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/mappers"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/viewmodels"
	"github.com/katzedaze/portfolio/modules/portfolio/services"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/middleware"
)

type SkillsController struct {
	app      application.Application
	skills   *services.SkillService
	basePath string
}

func NewSkillsController(app application.Application) application.Controller {
	return &SkillsController{
		app:      app,
		skills:   app.Service(services.SkillService{}).(*services.SkillService),
		basePath: "/api/skills",
	}
}

func (c *SkillsController) Key() string {
	return c.basePath
}

func (c *SkillsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.RequireAuthenticated(), middleware.WithTransaction())
	writeRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	writeRouter.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *SkillsController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.skills.GetAll(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	out := make([]viewmodels.Skill, 0, len(items))
	for _, s := range items {
		out = append(out, mappers.SkillToViewModel(s))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *SkillsController) Create(w http.ResponseWriter, r *http.Request) {
	var dto skill.UpsertDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}
	if _, err := c.skills.Create(r.Context(), &dto); err != nil {
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}

func (c *SkillsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto skill.UpsertDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}
	if err := c.skills.Update(r.Context(), id, &dto); err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			httpapi.WriteError(w, http.StatusNotFound, "Not Found")
			return
		}
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}

func (c *SkillsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.skills.Delete(r.Context(), id); err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			httpapi.WriteError(w, http.StatusNotFound, "Not Found")
			return
		}
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}
