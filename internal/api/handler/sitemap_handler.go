package handler

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

// SitemapHandler serves /sitemap.xml.
type SitemapHandler struct {
	sitemap ports.SitemapService
}

func NewSitemapHandler(sitemap ports.SitemapService) *SitemapHandler {
	return &SitemapHandler{sitemap: sitemap}
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *SitemapHandler) Sitemap(c echo.Context) error {
	scheme := c.Scheme()
	baseURL := scheme + "://" + c.Request().Host

	entries, err := h.sitemap.Entries(c.Request().Context(), baseURL)
	if err != nil {
		return err
	}

	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{Loc: e.Loc, LastMod: e.LastMod})
	}

	return c.XML(http.StatusOK, set)
}
