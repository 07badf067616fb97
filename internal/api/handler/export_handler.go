package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spiconsulting/consultancy-website/internal/api/metrics"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

// ExportHandler serves the admin-only JSON download of the full dataset.
type ExportHandler struct {
	export ports.ExportService
}

func NewExportHandler(export ports.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

func (h *ExportHandler) Download(c echo.Context) error {
	doc, err := h.export.Export(c.Request().Context())
	if err != nil {
		setFlash(c, "danger", "An error occurred during the export.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	metrics.ExportsTotal.Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=full_database_export.json`)
	return c.JSONPretty(http.StatusOK, doc, "    ")
}
