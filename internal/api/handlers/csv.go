package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aqarhub/aqarfinder/internal/exporter"
)

// RegisterCSVRoutes registers the endpoints that serve delimited text
// rather than JSON: shortlist downloads and provider upload templates.
// These live directly on Echo because they stream files, not API objects.
func RegisterCSVRoutes(e *echo.Echo, h *Handler) {
	e.GET("/api/v1/sessions/:id/shortlist.csv", h.shortlistCSV)
	e.GET("/api/v1/templates/:provider", h.templateCSV)
}

// shortlistCSV serves the session shortlist in the canonical 18-column
// layout, ready for re-upload.
func (h *Handler) shortlistCSV(c echo.Context) error {
	s, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}

	var buf bytes.Buffer
	if err := exporter.Write(&buf, s.Shortlist()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "export failed"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="shortlist_riyadh.csv"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

// templateCSV serves an upload template for the named provider.
func (h *Handler) templateCSV(c echo.Context) error {
	provider := c.Param("provider")

	var buf bytes.Buffer
	if err := exporter.Template(&buf, provider); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "template failed"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="template_%s.csv"`, provider))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
