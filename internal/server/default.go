package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/katzedaze/portfolio/modules/core/services"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/configuration"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/middleware"
	"github.com/katzedaze/portfolio/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	auth := app.Service(services.AuthService{}).(*services.AuthService)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{options.Configuration.Origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	app.RegisterMiddleware(
		middleware.RequestLogging(options.Logger),
		mux.MiddlewareFunc(corsHandler.Handler),
		middleware.WithPool(options.Pool),
		middleware.Authorize(auth),
	)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpapi.WriteError(w, http.StatusNotFound, "Not Found")
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpapi.WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return server.NewHTTPServer(app, notFound, methodNotAllowed), nil
}
