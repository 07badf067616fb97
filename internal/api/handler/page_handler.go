package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

const homePostCount = 3

// PageHandler serves the static marketing pages and the public blog and
// careers listings.
type PageHandler struct {
	posts ports.PostService
	jobs  ports.JobService
}

func NewPageHandler(posts ports.PostService, jobs ports.JobService) *PageHandler {
	return &PageHandler{posts: posts, jobs: jobs}
}

func (h *PageHandler) Home(c echo.Context) error {
	recent, err := h.posts.Recent(c.Request().Context(), homePostCount)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "home", map[string]any{
		"Title": "Home",
		"Posts": recent,
	})
}

func (h *PageHandler) About(c echo.Context) error {
	return render(c, http.StatusOK, "about", map[string]any{"Title": "About Us"})
}

func (h *PageHandler) Services(c echo.Context) error {
	return render(c, http.StatusOK, "services", map[string]any{"Title": "Our Services"})
}

func (h *PageHandler) ForClients(c echo.Context) error {
	return render(c, http.StatusOK, "for_clients", map[string]any{"Title": "For Clients"})
}

func (h *PageHandler) ForHire(c echo.Context) error {
	return render(c, http.StatusOK, "for_hire", map[string]any{"Title": "For Hire"})
}

func (h *PageHandler) Terms(c echo.Context) error {
	return render(c, http.StatusOK, "terms", map[string]any{"Title": "Terms of Service"})
}

func (h *PageHandler) Privacy(c echo.Context) error {
	return render(c, http.StatusOK, "privacy", map[string]any{"Title": "Privacy Policy"})
}

func (h *PageHandler) Blog(c echo.Context) error {
	posts, err := h.posts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "blog", map[string]any{
		"Title": "Blog",
		"Posts": posts,
	})
}

func (h *PageHandler) ShowPost(c echo.Context) error {
	post, err := h.posts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "post", map[string]any{
		"Title": post.Title,
		"Post":  post,
	})
}

func (h *PageHandler) Careers(c echo.Context) error {
	jobs, err := h.jobs.List(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "careers", map[string]any{
		"Title": "Careers",
		"Jobs":  jobs,
	})
}

func (h *PageHandler) ShowJob(c echo.Context) error {
	job, err := h.jobs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "job_opening", map[string]any{
		"Title": job.Title,
		"Job":   job,
	})
}
