package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katzedaze/portfolio/modules/core/services"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/composables"
	"github.com/katzedaze/portfolio/pkg/httpapi"
	"github.com/katzedaze/portfolio/pkg/middleware"
)

type UploadController struct {
	app      application.Application
	uploads  *services.UploadService
	basePath string
	maxSize  int64
}

func NewUploadController(app application.Application, maxSize int64) application.Controller {
	return &UploadController{
		app:      app,
		uploads:  app.Service(services.UploadService{}).(*services.UploadService),
		basePath: "/api/upload",
		maxSize:  maxSize,
	}
}

func (c *UploadController) Key() string {
	return c.basePath
}

func (c *UploadController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.RequireAuthenticated())
	router.HandleFunc("", c.Upload).Methods(http.MethodPost)
}

func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.maxSize+1)
	if err := r.ParseMultipartForm(c.maxSize); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "ファイルサイズは5MB以下にしてください")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("upload read failed")
		httpapi.WriteError(w, http.StatusInternalServerError, "アップロードに失敗しました")
		return
	}

	url, err := c.uploads.Save(r.Context(), header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFileType):
			httpapi.WriteError(w, http.StatusBadRequest, "画像ファイル（JPEG, PNG, WebP, GIF）のみアップロード可能です")
		case errors.Is(err, services.ErrFileTooLarge):
			httpapi.WriteError(w, http.StatusBadRequest, "ファイルサイズは5MB以下にしてください")
		default:
			composables.UseLogger(r.Context()).WithError(err).Error("upload failed")
			httpapi.WriteError(w, http.StatusInternalServerError, "アップロードに失敗しました")
		}
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}
