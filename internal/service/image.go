package service

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"foodgram/internal/models"

	"github.com/google/uuid"
)

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

const maxImageBytes = 5 << 20

// saveRecipeImage decodes a "data:image/...;base64," payload into the media
// directory and returns the relative path stored on the recipe row.
func saveRecipeImage(mediaDir, dataURI string) (string, error) {
	mime, payload, ok := splitDataURI(dataURI)
	if !ok {
		return "", models.NewValidationError("image must be a base64 data URI")
	}
	ext, ok := imageExtensions[mime]
	if !ok {
		return "", models.NewValidationError(fmt.Sprintf("unsupported image type %q", mime))
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", models.NewValidationError("image payload is not valid base64")
	}
	if len(raw) > maxImageBytes {
		return "", models.NewValidationError("image exceeds the 5 MiB limit")
	}

	relPath := filepath.Join("recipes", "images", uuid.NewString()+ext)
	fullPath := filepath.Join(mediaDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := os.WriteFile(fullPath, raw, 0o644); err != nil {
		return "", models.NewInternalError(err)
	}
	return relPath, nil
}

// removeRecipeImage drops a previously saved file, for rolling back a write
// whose surrounding transaction failed. A missing file is not an error.
func removeRecipeImage(mediaDir, relPath string) {
	if relPath == "" {
		return
	}
	os.Remove(filepath.Join(mediaDir, relPath))
}

func splitDataURI(uri string) (mime, payload string, ok bool) {
	if !strings.HasPrefix(uri, "data:") {
		return "", "", false
	}
	meta, payload, found := strings.Cut(uri[len("data:"):], ",")
	if !found {
		return "", "", false
	}
	mime, encoding, found := strings.Cut(meta, ";")
	if !found || encoding != "base64" {
		return "", "", false
	}
	return mime, payload, true
}
