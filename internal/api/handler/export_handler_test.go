package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

type stubExportService struct {
	doc *ports.ExportDocument
	err error
}

func (s *stubExportService) Export(_ context.Context) (*ports.ExportDocument, error) {
	return s.doc, s.err
}

func TestExportDownload(t *testing.T) {
	e := newTestEcho()
	h := NewExportHandler(&stubExportService{doc: &ports.ExportDocument{
		Users: []ports.ExportUser{{ID: "u1", Username: "admin", Email: "admin@spi.example", IsAdmin: true}},
		Posts: []ports.ExportPost{{ID: "p1", Title: "Welcome", AuthorUsername: "admin", Slug: "welcome"}},
		Jobs:  []ports.ExportJob{{ID: "j1", Title: "Backend Engineer"}},
	}})

	c, rec := newGetContext(e, "/export/download")
	if err := h.Download(c); err != nil {
		t.Fatalf("download failed: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "full_database_export.json") {
		t.Fatalf("content-disposition = %q", cd)
	}

	var doc ports.ExportDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if doc.Posts[0].AuthorUsername != "admin" {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestExportDownload_FailureRedirectsHome(t *testing.T) {
	e := newTestEcho()
	h := NewExportHandler(&stubExportService{err: errors.New("storage unavailable")})

	c, rec := newGetContext(e, "/export/download")
	if err := h.Download(c); err != nil {
		t.Fatalf("download should flash and redirect, got %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("location = %q", loc)
	}
	if flash := flashFrom(t, rec); flash == nil || flash.Level != "danger" {
		t.Fatalf("flash = %+v", flash)
	}
}
