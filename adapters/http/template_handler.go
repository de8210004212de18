package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MTahaFarrukh/PortBuilder/internal/domain/template"
	"github.com/MTahaFarrukh/PortBuilder/pkg/apperror"
)

type TemplateHandler struct {
	catalog *template.Catalog
}

func NewTemplateHandler(catalog *template.Catalog) *TemplateHandler {
	return &TemplateHandler{catalog: catalog}
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.catalog.Templates()})
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id := c.Param("id")
	t, ok := h.catalog.ByID(id)
	if !ok {
		c.Error(apperror.NewNotFound("template", id))
		return
	}
	c.JSON(http.StatusOK, t)
}
