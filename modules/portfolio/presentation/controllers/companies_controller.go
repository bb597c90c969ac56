package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/company"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/mappers"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/viewmodels"
	"github.com/katzedaze/portfolio/modules/portfolio/services"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/middleware"
)

type CompaniesController struct {
	app       application.Application
	companies *services.CompanyService
	basePath  string
}

func NewCompaniesController(app application.Application) application.Controller {
	return &CompaniesController{
		app:       app,
		companies: app.Service(services.CompanyService{}).(*services.CompanyService),
		basePath:  "/api/companies",
	}
}

func (c *CompaniesController) Key() string {
	return c.basePath
}

func (c *CompaniesController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.RequireAuthenticated(), middleware.WithTransaction())
	writeRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	writeRouter.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	writeRouter.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *CompaniesController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.companies.GetAll(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	out := make([]viewmodels.Company, 0, len(items))
	for _, item := range items {
		out = append(out, mappers.CompanyToViewModel(item))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *CompaniesController) Create(w http.ResponseWriter, r *http.Request) {
	var dto company.UpsertDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}
	if _, err := c.companies.Create(r.Context(), &dto); err != nil {
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}

func (c *CompaniesController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto company.UpsertDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}
	if err := c.companies.Update(r.Context(), id, &dto); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			httpapi.WriteError(w, http.StatusNotFound, "Not Found")
			return
		}
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}

// Delete removes a company. Projects that referenced it keep their rows
// with company_id cleared by the schema.
func (c *CompaniesController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.companies.Delete(r.Context(), id); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			httpapi.WriteError(w, http.StatusNotFound, "Not Found")
			return
		}
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}
