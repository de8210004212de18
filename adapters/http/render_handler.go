package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/MTahaFarrukh/PortBuilder/internal/application/render"
	"github.com/MTahaFarrukh/PortBuilder/internal/application/store"
	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
	"github.com/MTahaFarrukh/PortBuilder/pkg/apperror"
	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
)

// ViewCacheKeyPrefix is where the worker parks pre-rendered documents.
const ViewCacheKeyPrefix = "portfolio:view:"

// RenderHandler serves composed view documents: a live preview of the
// caller's in-memory document, and the public read-only view of a persisted
// profile. The public view is answered from the worker's pre-rendered cache
// when one exists.
type RenderHandler struct {
	stores   *store.Manager
	repo     portfolio.Repository
	renderer *render.Renderer
	rdb      *redis.Client
	logger   logger.Logger
}

func NewRenderHandler(stores *store.Manager, repo portfolio.Repository, renderer *render.Renderer, rdb *redis.Client, log logger.Logger) *RenderHandler {
	return &RenderHandler{stores: stores, repo: repo, renderer: renderer, rdb: rdb, logger: log}
}

// Preview renders the caller's current document; ?template= previews a
// not-yet-saved selection.
func (h *RenderHandler) Preview(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("userID not found in context", nil))
		return
	}

	s := h.stores.For(c.Request.Context(), userID)
	doc := h.renderer.Render(s.Profile(), c.Query("template"))
	c.JSON(http.StatusOK, doc)
}

// PublicView renders the persisted document for any user id.
func (h *RenderHandler) PublicView(c *gin.Context) {
	userID := c.Param("userId")

	if override := c.Query("template"); override == "" && h.rdb != nil {
		if raw, err := h.rdb.Get(c.Request.Context(), ViewCacheKeyPrefix+userID).Bytes(); err == nil {
			var doc render.Document
			if uerr := json.Unmarshal(raw, &doc); uerr == nil {
				c.JSON(http.StatusOK, doc)
				return
			}
		}
	}

	p, err := h.repo.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, portfolio.ErrProfileNotFound) {
			c.Error(apperror.NewNotFound("portfolio", userID))
			return
		}
		c.Error(apperror.NewPersistence("failed to read portfolio", err))
		return
	}

	c.JSON(http.StatusOK, h.renderer.Render(p, c.Query("template")))
}
