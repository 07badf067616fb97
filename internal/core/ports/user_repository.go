package ports

import (
	"context"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
//
// Create must enforce username and email uniqueness at the storage layer and
// return domain.ErrUsernameTaken / domain.ErrEmailTaken on violation; the
// read-only lookups performed during form validation are best-effort only.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}
