package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/api/view"
)

// newTestEcho builds an echo instance with the real renderer and validator,
// the same wiring the router installs.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = view.NewRenderer()
	e.Validator = NewValidator()
	return e
}

func newFormContext(e *echo.Echo, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newGetContext(e *echo.Echo, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// flashFrom decodes the flash cookie a handler queued on the response.
func flashFrom(t *testing.T, rec *httptest.ResponseRecorder) *Flash {
	t.Helper()
	res := rec.Result()
	for _, cookie := range res.Cookies() {
		if cookie.Name != flashCookie || cookie.Value == "" {
			continue
		}
		raw, err := url.QueryUnescape(cookie.Value)
		if err != nil {
			t.Fatalf("bad flash cookie: %v", err)
		}
		level, message, _ := strings.Cut(raw, "|")
		return &Flash{Level: level, Message: message}
	}
	return nil
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookie {
			return cookie
		}
	}
	return nil
}
