package ports

import "io"

// ImageStore persists uploaded post images. Save renames the file to a
// random token (keeping the original extension), caps its dimensions, and
// returns the stored filename.
type ImageStore interface {
	Save(r io.Reader, originalName string) (string, error)
}
