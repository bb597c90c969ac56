package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/introduction"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/mappers"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/viewmodels"
	"github.com/katzedaze/portfolio/modules/portfolio/services"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/middleware"
)

type IntroductionsController struct {
	app           application.Application
	introductions *services.IntroductionService
	basePath      string
}

func NewIntroductionsController(app application.Application) application.Controller {
	return &IntroductionsController{
		app:           app,
		introductions: app.Service(services.IntroductionService{}).(*services.IntroductionService),
		basePath:      "/api/introduction",
	}
}

func (c *IntroductionsController) Key() string {
	return c.basePath
}

func (c *IntroductionsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.RequireAuthenticated(), middleware.WithTransaction())
	writeRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	writeRouter.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *IntroductionsController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.introductions.GetAll(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	out := make([]viewmodels.Introduction, 0, len(items))
	for _, in := range items {
		out = append(out, mappers.IntroductionToViewModel(in))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *IntroductionsController) Create(w http.ResponseWriter, r *http.Request) {
	var dto introduction.UpsertDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}
	if _, err := c.introductions.Create(r.Context(), &dto); err != nil {
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}

func (c *IntroductionsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto introduction.UpsertDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}
	if err := c.introductions.Update(r.Context(), id, &dto); err != nil {
		if errors.Is(err, introduction.ErrNotFound) {
			httpapi.WriteError(w, http.StatusNotFound, "Not Found")
			return
		}
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}

func (c *IntroductionsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.introductions.Delete(r.Context(), id); err != nil {
		if errors.Is(err, introduction.ErrNotFound) {
			httpapi.WriteError(w, http.StatusNotFound, "Not Found")
			return
		}
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}
