package routes

import (
	"startupmentor/controllers"

	"github.com/gin-gonic/gin"
)

// SetupIdeaRoutes registers the evaluation endpoint on the given group.
func SetupIdeaRoutes(rg *gin.RouterGroup, ideaController *controllers.IdeaController) {
	rg.POST("/evaluate-idea", ideaController.EvaluateIdea)
}
