package ports

import (
	"context"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

// AuthService handles registration, login, and session tokens.
//
// Login issues a signed session token bound to the user id; remember extends
// the token lifetime. ResolveSession verifies a token and loads the current
// user record, so a stale admin flag is never trusted from the token itself.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string, remember bool) (*SessionToken, *domain.User, error)
	ResolveSession(ctx context.Context, token string) (*domain.User, error)
}

// SessionToken is a signed session token plus the lifetime it was issued
// with, in seconds. MaxAge doubles as the cookie Max-Age.
type SessionToken struct {
	Value  string
	MaxAge int
}
