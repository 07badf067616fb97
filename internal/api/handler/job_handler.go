package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/api/metrics"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

// JobHandler serves the admin-only careers board CRUD pages.
type JobHandler struct {
	jobs ports.JobService
}

func NewJobHandler(jobs ports.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) CreatePage(c echo.Context) error {
	return h.renderForm(c, http.StatusOK, "Create Job Posting", jobForm{}, nil)
}

func (h *JobHandler) Create(c echo.Context) error {
	form, fields, err := h.bindForm(c)
	if err != nil {
		return err
	}
	if fields != nil {
		return h.renderForm(c, http.StatusUnprocessableEntity, "Create Job Posting", form, fields)
	}

	_, err = h.jobs.Create(c.Request().Context(), ports.JobInput{
		Title:       form.Title,
		Location:    form.Location,
		JobType:     form.JobType,
		Description: form.Description,
	})
	if err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues("job", "create").Inc()
	setFlash(c, "success", "The job posting has been created.")
	return c.Redirect(http.StatusSeeOther, "/careers")
}

func (h *JobHandler) UpdatePage(c echo.Context) error {
	job, err := h.jobs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	form := jobForm{
		Title:       job.Title,
		Location:    job.Location,
		JobType:     job.JobType,
		Description: job.Description,
	}
	return h.renderForm(c, http.StatusOK, "Update Job Posting", form, nil)
}

func (h *JobHandler) Update(c echo.Context) error {
	form, fields, err := h.bindForm(c)
	if err != nil {
		return err
	}
	if fields != nil {
		return h.renderForm(c, http.StatusUnprocessableEntity, "Update Job Posting", form, fields)
	}

	id := c.Param("id")
	_, err = h.jobs.Update(c.Request().Context(), id, ports.JobInput{
		Title:       form.Title,
		Location:    form.Location,
		JobType:     form.JobType,
		Description: form.Description,
	})
	if err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues("job", "update").Inc()
	setFlash(c, "success", "The job posting has been updated.")
	return c.Redirect(http.StatusSeeOther, "/career/"+id)
}

func (h *JobHandler) Delete(c echo.Context) error {
	if err := h.jobs.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ContentMutationsTotal.WithLabelValues("job", "delete").Inc()
	setFlash(c, "success", "The job posting has been deleted.")
	return c.Redirect(http.StatusSeeOther, "/careers")
}

func (h *JobHandler) bindForm(c echo.Context) (jobForm, FieldErrors, error) {
	var form jobForm
	if err := c.Bind(&form); err != nil {
		return form, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		fields, err := formErrors(err)
		return form, fields, err
	}
	return form, nil, nil
}

func (h *JobHandler) renderForm(c echo.Context, status int, legend string, form jobForm, fields FieldErrors) error {
	return render(c, status, "job_form", map[string]any{
		"Title":  legend,
		"Legend": legend,
		"Form":   form,
		"Errors": fields,
	})
}
