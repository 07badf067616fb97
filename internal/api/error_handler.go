package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the site's error page.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		renderErr := c.Render(code, "error", map[string]any{
			"Title":   http.StatusText(code),
			"Status":  fmt.Sprintf("%d %s", code, http.StatusText(code)),
			"Message": msg,
		})
		if renderErr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "The page you requested does not exist."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to do that."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password."
	case errors.Is(err, domain.ErrUnsupportedImage):
		return http.StatusUnprocessableEntity, "Images only (jpg, jpeg, png, gif)."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong on our side."
}
