package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/api/metrics"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

const imageUploadField = "image_upload"

// PostHandler serves the admin-only blog CRUD pages.
type PostHandler struct {
	posts ports.PostService
}

func NewPostHandler(posts ports.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) CreatePage(c echo.Context) error {
	return h.renderForm(c, http.StatusOK, "New Post", postForm{}, nil)
}

func (h *PostHandler) Create(c echo.Context) error {
	form, fields, err := h.bindForm(c)
	if err != nil {
		return err
	}
	if fields != nil {
		return h.renderForm(c, http.StatusUnprocessableEntity, "New Post", form, fields)
	}

	image, closeUpload, err := uploadInput(c, form.ImageURL)
	if err != nil {
		return err
	}
	defer closeUpload()

	_, err = h.posts.Create(c.Request().Context(), ports.CreatePostInput{
		Title:    form.Title,
		Content:  form.Content,
		AuthorID: currentUser(c).ID,
		Image:    image,
	})
	if err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues("post", "create").Inc()
	setFlash(c, "success", "Your post has been created!")
	return c.Redirect(http.StatusSeeOther, "/blog")
}

func (h *PostHandler) UpdatePage(c echo.Context) error {
	post, err := h.posts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	form := postForm{Title: post.Title, Content: post.Content}
	if strings.HasPrefix(post.ImageFile, "http") {
		form.ImageURL = post.ImageFile
	}
	return h.renderForm(c, http.StatusOK, "Update Post", form, nil)
}

func (h *PostHandler) Update(c echo.Context) error {
	form, fields, err := h.bindForm(c)
	if err != nil {
		return err
	}
	if fields != nil {
		return h.renderForm(c, http.StatusUnprocessableEntity, "Update Post", form, fields)
	}

	image, closeUpload, err := uploadInput(c, form.ImageURL)
	if err != nil {
		return err
	}
	defer closeUpload()

	id := c.Param("id")
	_, err = h.posts.Update(c.Request().Context(), id, ports.UpdatePostInput{
		Title:   form.Title,
		Content: form.Content,
		Image:   image,
	})
	if err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues("post", "update").Inc()
	setFlash(c, "success", "Your post has been updated!")
	return c.Redirect(http.StatusSeeOther, "/post/"+id)
}

func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.posts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ContentMutationsTotal.WithLabelValues("post", "delete").Inc()
	setFlash(c, "success", "Your post has been deleted.")
	return c.Redirect(http.StatusSeeOther, "/blog")
}

func (h *PostHandler) bindForm(c echo.Context) (postForm, FieldErrors, error) {
	var form postForm
	if err := c.Bind(&form); err != nil {
		return form, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		fields, err := formErrors(err)
		return form, fields, err
	}
	return form, nil, nil
}

func (h *PostHandler) renderForm(c echo.Context, status int, legend string, form postForm, fields FieldErrors) error {
	return render(c, status, "post_form", map[string]any{
		"Title":  legend,
		"Legend": legend,
		"Form":   form,
		"Errors": fields,
	})
}

// uploadInput assembles the image precedence input: an uploaded file when one
// was submitted, else the pasted URL. The returned closer is a no-op when no
// file was opened.
func uploadInput(c echo.Context, imageURL string) (ports.ImageInput, func(), error) {
	input := ports.ImageInput{URL: imageURL}
	noop := func() {}

	fh, err := c.FormFile(imageUploadField)
	if err != nil || fh == nil {
		// no file part in the request
		return input, noop, nil
	}

	src, err := fh.Open()
	if err != nil {
		return input, noop, echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}

	input.Upload = src
	input.Filename = fh.Filename
	return input, func() { _ = src.Close() }, nil
}
