package ports

import (
	"context"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

// JobInput is the full field set of a job posting; create and update take
// the same shape.
type JobInput struct {
	Title       string
	Location    string
	JobType     string
	Description string
}

// JobService implements the careers board workflows.
type JobService interface {
	Create(ctx context.Context, input JobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	Update(ctx context.Context, id string, input JobInput) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
