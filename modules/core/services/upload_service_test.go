package services_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/modules/core/services"
)

// Smallest valid 1x1 PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0a, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

func TestUploadService_SavePNG(t *testing.T) {
	dir := t.TempDir()
	svc := services.NewUploadService(dir, 1<<20)

	url, err := svc.Save(context.Background(), "photo.png", pngBytes)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/avatar-"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	saved, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, saved)
}

func TestUploadService_RejectsNonImage(t *testing.T) {
	svc := services.NewUploadService(t.TempDir(), 1<<20)
	_, err := svc.Save(context.Background(), "note.txt", []byte("plain text"))
	assert.ErrorIs(t, err, services.ErrInvalidFileType)
}

func TestUploadService_RejectsOversized(t *testing.T) {
	svc := services.NewUploadService(t.TempDir(), 8)
	_, err := svc.Save(context.Background(), "photo.png", pngBytes)
	assert.ErrorIs(t, err, services.ErrFileTooLarge)
}
