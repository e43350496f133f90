package controllers

import (
	"net/http"

	"startupmentor/models"
	"startupmentor/services"

	"github.com/gin-gonic/gin"
)

// IdeaController serves the idea evaluation endpoint.
type IdeaController struct {
	evaluator *services.Evaluator
}

func NewIdeaController(evaluator *services.Evaluator) *IdeaController {
	return &IdeaController{evaluator: evaluator}
}

// EvaluateIdea handles POST /api/evaluate-idea. The payload is bound as-is;
// field-level validation (a non-empty description) is the client form's job,
// so an empty description still produces a request upstream.
func (ic *IdeaController) EvaluateIdea(c *gin.Context) {
	var submission models.IdeaSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	verdict, err := ic.evaluator.Evaluate(c.Request.Context(), submission)
	if err != nil {
		// Upstream, malformed and incomplete responses collapse into one
		// uniform failure shape; they are told apart in server logs only.
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error evaluating startup idea",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, verdict)
}

// HealthCheck handles GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
