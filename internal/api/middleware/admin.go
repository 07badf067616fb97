package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

func principal(c echo.Context) *domain.User {
	user, _ := c.Get("principal").(*domain.User)
	return user
}

// RequireAdmin gates content-mutating routes on the admin flag of the
// resolved principal. Anonymous requests are sent to login; authenticated
// non-admins get a bare 403 with no further detail.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := principal(c)
			if user == nil {
				return c.Redirect(http.StatusSeeOther, "/auth/login?next="+url.QueryEscape(c.Request().URL.Path))
			}
			if !user.IsAdmin {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
