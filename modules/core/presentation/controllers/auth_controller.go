package controllers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katzedaze/portfolio/modules/core/domain/aggregates/user"
	"github.com/katzedaze/portfolio/modules/core/services"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/composables"
	"github.com/katzedaze/portfolio/pkg/configuration"
	"github.com/katzedaze/portfolio/pkg/constants"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/middleware"
)

type AuthController struct {
	app      application.Application
	auth     *services.AuthService
	basePath string
}

func NewAuthController(app application.Application) application.Controller {
	return &AuthController{
		app:      app,
		auth:     app.Service(services.AuthService{}).(*services.AuthService),
		basePath: "/api/auth",
	}
}

func (c *AuthController) Key() string {
	return c.basePath
}

func (c *AuthController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.WithTransaction())
	router.HandleFunc("/login", c.Login).Methods(http.MethodPost)
	router.HandleFunc("/logout", c.Logout).Methods(http.MethodPost)

	sessionRouter := r.PathPrefix(c.basePath).Subrouter()
	sessionRouter.HandleFunc("/session", c.Session).Methods(http.MethodGet)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var dto user.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "Invalid Request Body")
		return
	}
	if details, ok := dto.Ok(); !ok {
		httpapi.WriteValidationError(w, details)
		return
	}

	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	u, sess, err := c.auth.Login(r.Context(), dto.Email, dto.Password, ip, r.UserAgent())
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			httpapi.WriteError(w, http.StatusUnauthorized, "メールアドレスまたはパスワードが正しくありません")
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("login failed")
		httpapi.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	conf := configuration.Use()
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   conf.Scheme() == "https",
	})
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":    u.ID(),
			"email": u.Email(),
			"name":  u.Name(),
		},
	})
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := c.auth.Logout(r.Context(), cookie.Value); err != nil {
			composables.UseLogger(r.Context()).WithError(err).Error("logout failed")
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	httpapi.WriteSuccess(w)
}

// Session reports the signed-in user. The Authorize middleware has
// already resolved the cookie by the time this runs.
func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	u, err := composables.UseUser(r.Context())
	if err != nil {
		httpapi.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	sess, err := composables.UseSession(r.Context())
	if err != nil {
		httpapi.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":    u.ID(),
			"email": u.Email(),
			"name":  u.Name(),
		},
		"session": map[string]any{
			"expiresAt": sess.ExpiresAt,
		},
	})
}
