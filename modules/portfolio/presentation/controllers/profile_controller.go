package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/profile"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/mappers"
	"github.com/katzedaze/portfolio/modules/portfolio/services"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/composables"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/middleware"
)

type ProfileController struct {
	app      application.Application
	profiles *services.ProfileService
	basePath string
}

func NewProfileController(app application.Application) application.Controller {
	return &ProfileController{
		app:      app,
		profiles: app.Service(services.ProfileService{}).(*services.ProfileService),
		basePath: "/api/profile",
	}
}

func (c *ProfileController) Key() string {
	return c.basePath
}

func (c *ProfileController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuthenticated())
	router.HandleFunc("", c.Get).Methods(http.MethodGet)

	writeRouter := r.PathPrefix(c.basePath).Subrouter()
	writeRouter.Use(middleware.RequireAuthenticated(), middleware.WithTransaction())
	writeRouter.HandleFunc("", c.Upsert).Methods(http.MethodPost)
}

// Get returns the signed-in user's profile, or JSON null before one has
// been created.
func (c *ProfileController) Get(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		httpapi.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	p, err := c.profiles.GetByUserID(r.Context(), u.ID())
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			httpapi.WriteJSON(w, http.StatusOK, nil)
			return
		}
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, mappers.ProfileToViewModel(p))
}

func (c *ProfileController) Upsert(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		httpapi.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var dto profile.UpsertDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}
	if _, err := c.profiles.Upsert(r.Context(), u.ID(), &dto); err != nil {
		writeInternalError(w, r, err)
		return
	}
	httpapi.WriteSuccess(w)
}
