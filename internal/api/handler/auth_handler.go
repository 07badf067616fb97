package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/api/metrics"
	"github.com/spiconsulting/consultancy-website/internal/core/domain"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

const sessionCookie = "session"

// AuthHandler serves the login, registration, and logout pages.
type AuthHandler struct {
	auth          ports.AuthService
	secureCookies bool
}

func NewAuthHandler(auth ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, secureCookies: secureCookies}
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	if currentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.renderLogin(c, http.StatusOK, loginForm{}, nil)
}

// Login authenticates the submitted credentials and establishes the session
// cookie. The failure message never distinguishes an unknown address from a
// wrong password.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		fields, err := formErrors(err)
		if err != nil {
			return err
		}
		return h.renderLogin(c, http.StatusUnprocessableEntity, form, fields)
	}

	token, user, err := h.auth.Login(c.Request().Context(), form.Email, form.Password, form.Remember)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			setFlash(c, "danger", "Invalid email or password.")
			return c.Redirect(http.StatusSeeOther, "/auth/login")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token.Value,
		Path:     "/",
		MaxAge:   token.MaxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	setFlash(c, "success", fmt.Sprintf("Welcome back, %s!", user.Username))
	return c.Redirect(http.StatusSeeOther, safeNext(c.QueryParam("next")))
}

func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if currentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.renderRegister(c, http.StatusOK, registerForm{}, nil)
}

// Register creates a new account. Duplicate username/email come back as
// field errors on the re-rendered form, whether they were caught by the
// read-only check or by the storage unique index.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		fields, err := formErrors(err)
		if err != nil {
			return err
		}
		return h.renderRegister(c, http.StatusUnprocessableEntity, form, fields)
	}

	_, err := h.auth.Register(c.Request().Context(), form.Username, form.Email, form.Password)
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		fields := FieldErrors{"username": "This username is already taken. Please choose a different one."}
		return h.renderRegister(c, http.StatusUnprocessableEntity, form, fields)
	case errors.Is(err, domain.ErrEmailTaken):
		fields := FieldErrors{"email": "This email address is already registered."}
		return h.renderRegister(c, http.StatusUnprocessableEntity, form, fields)
	case err != nil:
		return err
	}

	metrics.RegistrationsTotal.Inc()
	setFlash(c, "success", "Congratulations, you are now a registered user!")
	return c.Redirect(http.StatusSeeOther, "/auth/login")
}

// Logout clears the session cookie unconditionally.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	setFlash(c, "info", "You have been successfully logged out.")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) renderLogin(c echo.Context, status int, form loginForm, fields FieldErrors) error {
	return render(c, status, "login", map[string]any{
		"Title":  "Sign In",
		"Form":   form,
		"Errors": fields,
		"Next":   safeNext(c.QueryParam("next")),
	})
}

func (h *AuthHandler) renderRegister(c echo.Context, status int, form registerForm, fields FieldErrors) error {
	return render(c, status, "register", map[string]any{
		"Title":  "Register",
		"Form":   form,
		"Errors": fields,
	})
}

// safeNext restricts post-login redirects to local paths.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
