package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrInvalidFileType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// UploadService stores avatar images on the local filesystem and returns
// their public URL path.
type UploadService struct {
	dir     string
	maxSize int64
}

func NewUploadService(dir string, maxSize int64) *UploadService {
	return &UploadService{dir: dir, maxSize: maxSize}
}

// Save sniffs the content type rather than trusting the client header.
func (s *UploadService) Save(ctx context.Context, originalName string, data []byte) (string, error) {
	if int64(len(data)) > s.maxSize {
		return "", ErrFileTooLarge
	}
	mime := mimetype.Detect(data)
	if _, ok := allowedImageTypes[mime.String()]; !ok {
		return "", ErrInvalidFileType
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = mime.Extension()
	}
	filename := fmt.Sprintf("avatar-%d%s", time.Now().UnixMilli(), ext)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}
