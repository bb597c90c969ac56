package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katzedaze/portfolio/modules/core/domain/aggregates/user"
	"github.com/katzedaze/portfolio/modules/core/services"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/composables"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/middleware"
)

type AccountController struct {
	app      application.Application
	users    *services.UserService
	basePath string
}

func NewAccountController(app application.Application) application.Controller {
	return &AccountController{
		app:      app,
		users:    app.Service(services.UserService{}).(*services.UserService),
		basePath: "/api/account",
	}
}

func (c *AccountController) Key() string {
	return c.basePath
}

func (c *AccountController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuthenticated(), middleware.WithTransaction())
	router.HandleFunc("/email", c.ChangeEmail).Methods(http.MethodPut)
	router.HandleFunc("/password", c.ChangePassword).Methods(http.MethodPut)
}

func (c *AccountController) ChangeEmail(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		httpapi.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var dto user.ChangeEmailDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "Invalid Request Body")
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}
	if err := c.users.ChangeEmail(r.Context(), u.ID(), dto.NewEmail); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			httpapi.WriteError(w, http.StatusBadRequest, "このメールアドレスは既に使用されています")
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("email change failed")
		httpapi.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpapi.WriteSuccess(w)
}

func (c *AccountController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		httpapi.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var dto user.ChangePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "Invalid Request Body")
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}
	if err := c.users.ChangePassword(r.Context(), u.ID(), dto.CurrentPassword, dto.NewPassword); err != nil {
		if errors.Is(err, user.ErrInvalidPassword) {
			httpapi.WriteError(w, http.StatusBadRequest, "パスワードの更新に失敗しました")
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("password change failed")
		httpapi.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpapi.WriteSuccess(w)
}
