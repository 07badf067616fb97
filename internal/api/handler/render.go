package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
)

// principalKey is the context key under which the session middleware stores
// the authenticated user.
const principalKey = "principal"

const flashCookie = "flash"

// Flash is a one-shot notice carried across a redirect in a cookie.
type Flash struct {
	Level   string // "success", "info", "danger"
	Message string
}

// currentUser returns the authenticated user, or nil for anonymous requests.
func currentUser(c echo.Context) *domain.User {
	user, _ := c.Get(principalKey).(*domain.User)
	return user
}

// setFlash queues a notice for the next rendered page.
func setFlash(c echo.Context, level, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash reads and clears the pending notice, if any.
func popFlash(c echo.Context) *Flash {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] == '|' {
			return &Flash{Level: raw[:i], Message: raw[i+1:]}
		}
	}
	return &Flash{Level: "info", Message: raw}
}

// render executes a page template with the principal and any pending flash
// merged into the data map.
func render(c echo.Context, status int, page string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	data["User"] = currentUser(c)
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlash(c)
	}
	return c.Render(status, page, data)
}

// formErrors extracts field messages from a validation failure; any other
// error is passed through to the central error handler.
func formErrors(err error) (FieldErrors, error) {
	var fields FieldErrors
	if errors.As(err, &fields) {
		return fields, nil
	}
	return nil, err
}
