package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-service/internal/distribution"
	"assessment-service/internal/intent"
	"assessment-service/internal/models"
	"assessment-service/internal/service"
)

type SelectQuestionsRequest struct {
	Intent            string   `json:"intent" binding:"required"`
	Experience        string   `json:"experience" binding:"required"`
	CurrentRole       string   `json:"current_role"`
	TargetRoles       []string `json:"target_roles"`
	UseAIOptimization bool     `json:"use_ai_optimization"`
}

type AssessmentHandler struct {
	Service *service.AssessmentService
}

func NewAssessmentHandler(s *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{Service: s}
}

// SelectQuestions runs the distribution pipeline for one assessment. The
// response envelope always carries success and a questions array; internal
// failures surface as a 500 with an empty list, never as a raw error.
func (h *AssessmentHandler) SelectQuestions(c *gin.Context) {
	var req SelectQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"questions": []models.Question{},
			"error":     err.Error(),
		})
		return
	}

	result, err := h.Service.SelectQuestions(context.Background(), distribution.Request{
		Intent:      intent.Intent(req.Intent),
		Experience:  req.Experience,
		CurrentRole: req.CurrentRole,
		TargetRoles: req.TargetRoles,
	}, req.UseAIOptimization)
	if err != nil {
		log.Printf("assessment: question selection failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"questions": []models.Question{},
			"error":     "question selection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": result.Questions,
		"metadata":  result.Metadata,
	})
}
