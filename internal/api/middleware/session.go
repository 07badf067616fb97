package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

const sessionCookie = "session"

// Session resolves the session cookie into the current user and injects it
// into context under "principal". Anonymous and invalid sessions pass
// through with no principal set; route guards decide what that means.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			user, err := auth.ResolveSession(c.Request().Context(), cookie.Value)
			if err != nil {
				// stale or tampered token; treat as anonymous
				return next(c)
			}

			c.Set("principal", user)
			return next(c)
		}
	}
}

// RequireLogin redirects anonymous requests to the login page, preserving
// the requested path for the post-login redirect.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if principal(c) == nil {
				return c.Redirect(http.StatusSeeOther, "/auth/login?next="+url.QueryEscape(c.Request().URL.Path))
			}
			return next(c)
		}
	}
}
