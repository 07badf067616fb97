package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/api/metrics"
	"github.com/spiconsulting/consultancy-website/internal/core/domain"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

// ContactHandler serves the contact form. Submissions are dispatched by
// mail and never persisted; a transport failure surfaces as a generic flash
// and the request completes normally.
type ContactHandler struct {
	contact ports.ContactService
}

func NewContactHandler(contact ports.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

func (h *ContactHandler) Page(c echo.Context) error {
	return h.renderForm(c, http.StatusOK, contactForm{}, nil)
}

func (h *ContactHandler) Submit(c echo.Context) error {
	var form contactForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		fields, err := formErrors(err)
		if err != nil {
			return err
		}
		return h.renderForm(c, http.StatusUnprocessableEntity, form, fields)
	}

	err := h.contact.Submit(c.Request().Context(), domain.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Service: form.Service,
		Message: form.Message,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMailDelivery) {
			metrics.ContactMessagesTotal.WithLabelValues("error").Inc()
			setFlash(c, "danger", "Sorry, there was an error sending your message. Please try again later.")
			return c.Redirect(http.StatusSeeOther, "/contact")
		}
		return err
	}

	metrics.ContactMessagesTotal.WithLabelValues("sent").Inc()
	setFlash(c, "success", "Thank you for your message! A confirmation has been sent to your email.")
	return c.Redirect(http.StatusSeeOther, "/contact")
}

func (h *ContactHandler) renderForm(c echo.Context, status int, form contactForm, fields FieldErrors) error {
	return render(c, status, "contact", map[string]any{
		"Title":    "Contact Us",
		"Form":     form,
		"Errors":   fields,
		"Services": domain.ServiceCategories,
	})
}
