package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-service/internal/intent"
	"assessment-service/internal/service"
)

type IntentHandler struct {
	Service *service.IntentService
}

func NewIntentHandler(s *service.IntentService) *IntentHandler {
	return &IntentHandler{Service: s}
}

// DetectIntent classifies a profile-shaped body. Detection cannot fail: the
// classifier falls back to its deterministic rules when remote services are
// unreachable and marks the response accordingly.
func (h *IntentHandler) DetectIntent(c *gin.Context) {
	var profile intent.ProfileInput
	if err := c.ShouldBindJSON(&profile); err != nil {
		BadRequestResponse(c, "Invalid profile body", err)
		return
	}
	if profile.Experience == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "experience: is required"})
		return
	}

	detection := h.Service.DetectIntent(context.Background(), profile)
	c.JSON(http.StatusOK, detection)
}
