// Package view renders the site's HTML pages. Templates are embedded so the
// binary is self-contained; each page is parsed together with the base
// layout, the way a page either fills or inherits the layout blocks.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

var pages = []string{
	"home", "about", "services", "for_clients", "for_hire",
	"careers", "job_opening", "blog", "post", "contact",
	"login", "register", "post_form", "job_form",
	"terms", "privacy", "error",
}

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"paragraphs": paragraphs,
		"imageSrc":   imageSrc,
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		templates[page] = template.Must(
			template.New("base.html").Funcs(funcs).ParseFS(
				templateFS,
				"templates/base.html",
				"templates/"+page+".html",
			))
	}
	return &Renderer{templates: templates}
}

// Render satisfies echo.Renderer. name is the page name without extension.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("view: unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "base.html", data)
}

// imageSrc turns a stored post image reference into a usable src: absolute
// URLs pass through, uploaded filenames resolve under /static/post_images/.
func imageSrc(s string) string {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return "/static/post_images/" + s
}

// paragraphs splits plain text on blank lines into <p> elements.
func paragraphs(s string) template.HTML {
	s = template.HTMLEscapeString(s)

	var out []string
	for _, p := range strings.Split(s, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			p = strings.ReplaceAll(p, "\n", "<br>")
			out = append(out, "<p>"+p+"</p>")
		}
	}
	return template.HTML(strings.Join(out, "\n"))
}
