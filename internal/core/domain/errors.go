package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrForbidden          = errors.New("access forbidden")
	ErrMailDelivery       = errors.New("mail delivery failed")
	ErrUnsupportedImage   = errors.New("unsupported image type")
)
