package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/project"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/mappers"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/viewmodels"
	"github.com/katzedaze/portfolio/modules/portfolio/services"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/middleware"
)

type ProjectsController struct {
	app      application.Application
	projects *services.ProjectService
	basePath string
}

func NewProjectsController(app application.Application) application.Controller {
	return &ProjectsController{
		app:      app,
		projects: app.Service(services.ProjectService{}).(*services.ProjectService),
		basePath: "/api/projects",
	}
}

func (c *ProjectsController) Key() string {
	return c.basePath
}

func (c *ProjectsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.RequireAuthenticated(), middleware.WithTransaction())
	writeRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	writeRouter.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

// List returns projects with their company joined for the public page.
func (c *ProjectsController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.projects.GetAll(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	out := make([]viewmodels.Project, 0, len(items))
	for _, item := range items {
		out = append(out, mappers.ProjectToViewModel(item.Project, item.Company))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *ProjectsController) Create(w http.ResponseWriter, r *http.Request) {
	var dto project.UpsertDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}
	if _, err := c.projects.Create(r.Context(), &dto); err != nil {
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}

func (c *ProjectsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto project.UpsertDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}
	if err := c.projects.Update(r.Context(), id, &dto); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			httpapi.WriteError(w, http.StatusNotFound, "Not Found")
			return
		}
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}

func (c *ProjectsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.projects.Delete(r.Context(), id); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			httpapi.WriteError(w, http.StatusNotFound, "Not Found")
			return
		}
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}
