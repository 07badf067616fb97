package ports

import (
	"context"
	"io"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

// ImageInput carries optional image data for a post. When Upload is non-nil
// it wins over URL; when both are empty the default placeholder applies on
// create and the existing image is kept on update.
type ImageInput struct {
	Upload   io.Reader
	Filename string // original filename of the upload, used for its extension
	URL      string
}

// CreatePostInput is everything needed to create a post.
type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID string
	Image    ImageInput
}

// UpdatePostInput mutates title, content, and optionally the image of an
// existing post.
type UpdatePostInput struct {
	Title   string
	Content string
	Image   ImageInput
}

// PostService implements the blog post workflows.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Recent(ctx context.Context, n int) ([]domain.Post, error)
	Update(ctx context.Context, id string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
