package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katzedaze/portfolio/pkg/application"
)

// StaticController serves uploaded avatar images.
type StaticController struct {
	dir      string
	basePath string
}

func NewStaticController(dir string) application.Controller {
	return &StaticController{
		dir:      dir,
		basePath: "/uploads",
	}
}

func (c *StaticController) Key() string {
	return c.basePath
}

func (c *StaticController) Register(r *mux.Router) {
	r.PathPrefix(c.basePath + "/").Handler(
		http.StripPrefix(c.basePath+"/", http.FileServer(http.Dir(c.dir))),
	).Methods(http.MethodGet)
}
