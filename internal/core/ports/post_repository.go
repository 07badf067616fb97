package ports

import (
	"context"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

// PostRepository defines the interface for blog post persistence.
//
// FindAll returns posts newest-first by creation timestamp. Create must
// enforce slug uniqueness at the storage layer.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindAll(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}
