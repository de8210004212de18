package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MTahaFarrukh/PortBuilder/internal/application/store"
	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
	"github.com/MTahaFarrukh/PortBuilder/pkg/apperror"
	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
)

// PortfolioHandler exposes the profile store's operations. Each request
// resolves the caller's own store through the manager; collection mutations
// answer with the updated document so the editor can re-render immediately.
type PortfolioHandler struct {
	stores *store.Manager
	logger logger.Logger
}

func NewPortfolioHandler(stores *store.Manager, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{stores: stores, logger: log}
}

func (h *PortfolioHandler) storeFor(c *gin.Context) (*store.ProfileStore, bool) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("userID not found in context", nil))
		return nil, false
	}
	return h.stores.For(c.Request.Context(), userID), true
}

func (h *PortfolioHandler) GetProfile(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) UpdateProfile(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}

	var patch portfolio.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	s.UpdateProfile(c.Request.Context(), patch)
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) SelectTemplate(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}

	var req SelectTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for template selection", err))
		return
	}

	s.UpdateProfile(c.Request.Context(), portfolio.ProfilePatch{TemplateID: &req.TemplateID})
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) SaveProfile(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}
	s.SaveProfile(c.Request.Context())
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) ResetProfile(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}
	s.ResetProfile()
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) AddSkill(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}

	var in portfolio.SkillInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill", err))
		return
	}

	id := s.AddSkill(c.Request.Context(), in)
	c.JSON(http.StatusCreated, toEntityCreatedResponse(s, id))
}

func (h *PortfolioHandler) UpdateSkill(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}

	var patch portfolio.SkillPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill update", err))
		return
	}

	s.UpdateSkill(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) RemoveSkill(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}
	s.RemoveSkill(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) AddProject(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}

	var in portfolio.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project", err))
		return
	}

	id := s.AddProject(c.Request.Context(), in)
	c.JSON(http.StatusCreated, toEntityCreatedResponse(s, id))
}

func (h *PortfolioHandler) UpdateProject(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}

	var patch portfolio.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project update", err))
		return
	}

	s.UpdateProject(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) RemoveProject(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}
	s.RemoveProject(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) AddEducation(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}

	var in portfolio.EducationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for education", err))
		return
	}

	id := s.AddEducation(c.Request.Context(), in)
	c.JSON(http.StatusCreated, toEntityCreatedResponse(s, id))
}

func (h *PortfolioHandler) UpdateEducation(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}

	var patch portfolio.EducationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for education update", err))
		return
	}

	s.UpdateEducation(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) RemoveEducation(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}
	s.RemoveEducation(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) AddExperience(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}

	var in portfolio.ExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience", err))
		return
	}

	id := s.AddExperience(c.Request.Context(), in)
	c.JSON(http.StatusCreated, toEntityCreatedResponse(s, id))
}

func (h *PortfolioHandler) UpdateExperience(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}

	var patch portfolio.ExperiencePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience update", err))
		return
	}

	s.UpdateExperience(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusOK, toProfileResponse(s))
}

func (h *PortfolioHandler) RemoveExperience(c *gin.Context) {
	s, ok := h.storeFor(c)
	if !ok {
		return
	}
	s.RemoveExperience(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, toProfileResponse(s))
}
