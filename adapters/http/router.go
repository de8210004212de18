package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
)

// RouterDeps bundles everything the route table needs. Avatar is optional;
// deployments without media storage simply do not expose the upload route.
type RouterDeps struct {
	Portfolio *PortfolioHandler
	Templates *TemplateHandler
	Render    *RenderHandler
	Avatar    *AvatarHandler
	AuthMW    gin.HandlerFunc
	Logger    logger.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(deps.Logger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.GET("/templates", deps.Templates.ListTemplates)
		api.GET("/templates/:id", deps.Templates.GetTemplate)

		api.GET("/portfolio/:userId/view", deps.Render.PublicView)

		private := api.Group("/portfolio")
		private.Use(deps.AuthMW)
		{
			private.GET("", deps.Portfolio.GetProfile)
			private.PATCH("", deps.Portfolio.UpdateProfile)
			private.PUT("/template", deps.Portfolio.SelectTemplate)
			private.POST("/save", deps.Portfolio.SaveProfile)
			private.POST("/reset", deps.Portfolio.ResetProfile)
			private.GET("/preview", deps.Render.Preview)

			if deps.Avatar != nil {
				private.POST("/avatar", deps.Avatar.UploadAvatar)
			}

			skills := private.Group("/skills")
			{
				skills.POST("", deps.Portfolio.AddSkill)
				skills.PATCH("/:id", deps.Portfolio.UpdateSkill)
				skills.DELETE("/:id", deps.Portfolio.RemoveSkill)
			}

			projects := private.Group("/projects")
			{
				projects.POST("", deps.Portfolio.AddProject)
				projects.PATCH("/:id", deps.Portfolio.UpdateProject)
				projects.DELETE("/:id", deps.Portfolio.RemoveProject)
			}

			education := private.Group("/education")
			{
				education.POST("", deps.Portfolio.AddEducation)
				education.PATCH("/:id", deps.Portfolio.UpdateEducation)
				education.DELETE("/:id", deps.Portfolio.RemoveEducation)
			}

			experiences := private.Group("/experiences")
			{
				experiences.POST("", deps.Portfolio.AddExperience)
				experiences.PATCH("/:id", deps.Portfolio.UpdateExperience)
				experiences.DELETE("/:id", deps.Portfolio.RemoveExperience)
			}
		}
	}

	return router
}
