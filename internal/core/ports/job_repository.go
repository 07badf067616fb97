package ports

import (
	"context"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

// JobRepository defines the interface for job posting persistence.
// FindAll returns jobs in insertion order.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	FindAll(ctx context.Context) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id string) error
}
