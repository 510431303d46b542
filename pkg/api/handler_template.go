package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/squadflow/squadflow/pkg/models"
	"github.com/squadflow/squadflow/pkg/template"
)

// listTemplatesHandler handles GET /api/v1/templates.
func (s *Server) listTemplatesHandler(c *echo.Context) error {
	templates, err := s.templateService.ListTemplates(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, templates)
}

// getTemplateHandler handles GET /api/v1/templates/:slug.
func (s *Server) getTemplateHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "template slug is required")
	}

	tmpl, err := s.templateService.GetTemplate(c.Request().Context(), slug)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tmpl)
}

// upsertTemplateHandler handles PUT /api/v1/templates/:slug.
func (s *Server) upsertTemplateHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "template slug is required")
	}
	var f template.File
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	f.Slug = slug

	tmpl, err := s.templateService.UpsertTemplate(c.Request().Context(), &f)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tmpl)
}

// applyTemplateHandler handles POST /api/v1/templates/:slug/apply.
// Instantiates a squad with agents and routing rules in one transaction.
func (s *Server) applyTemplateHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "template slug is required")
	}
	var req models.ApplyTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.OwnerID == "" {
		req.OwnerID = requestOwner(c)
	}

	detail, err := s.templateService.ApplyTemplate(c.Request().Context(), slug, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, detail)
}
