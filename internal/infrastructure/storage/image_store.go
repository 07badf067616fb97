// Package storage persists uploaded post images on the local filesystem.
package storage

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

// maxBounds is the bounding box uploads are scaled down to fit.
const maxBounds = 1200

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// ImageStore writes uploads into a single directory under random filenames.
type ImageStore struct {
	dir string
}

// NewImageStore creates the upload directory if needed.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save decodes the upload, scales it to fit within maxBounds on both axes
// (never upscaling), and writes it under a random token that keeps the
// original extension. The stored filename is returned.
func (s *ImageStore) Save(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", domain.ErrUnsupportedImage
	}

	img, err := imaging.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnsupportedImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxBounds || bounds.Dy() > maxBounds {
		img = imaging.Fit(img, maxBounds, maxBounds, imaging.Lanczos)
	}

	name := randomFilename() + ext
	if err := imaging.Save(img, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return name, nil
}

// Path returns the absolute location of a stored filename.
func (s *ImageStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Dir returns the upload directory, for static file serving.
func (s *ImageStore) Dir() string {
	return s.dir
}

func randomFilename() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
