package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

// AuthService implements registration, login, and session resolution.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
}

func NewAuthService(repo ports.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret}
}

// Register creates a user with a hashed password. Username and email are
// checked first with read-only lookups; the storage unique indexes remain
// the authoritative guard, so a concurrent duplicate insert still comes back
// as ErrUsernameTaken / ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	return s.repo.Create(ctx, user)
}

// Login authenticates by email. A missing account and a wrong password both
// produce ErrInvalidCredentials so the response never confirms whether an
// address is registered.
func (s *AuthService) Login(ctx context.Context, email, password string, remember bool) (*ports.SessionToken, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	ttl := sessionTTL
	if remember {
		ttl = rememberTTL
	}

	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, nil, err
	}

	return &ports.SessionToken{Value: signed, MaxAge: int(ttl.Seconds())}, user, nil
}

// ResolveSession verifies a session token and loads the user it identifies.
// The admin flag always comes from the current user record, not the token.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return s.repo.FindByID(ctx, sub)
}
