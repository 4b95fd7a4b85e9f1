package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-service/internal/service"
)

type ResultHandler struct {
	Service *service.ResultService
}

func NewResultHandler(s *service.ResultService) *ResultHandler {
	return &ResultHandler{Service: s}
}

func (h *ResultHandler) CreateResult(c *gin.Context) {
	var sub service.ResultSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		BadRequestResponse(c, "Invalid result body", err)
		return
	}
	if sub.UserID == "" {
		sub.UserID = c.GetHeader("X-User-ID")
	}

	result, err := h.Service.CreateResult(context.Background(), &sub)
	if err != nil {
		InternalErrorResponse(c, "Failed to store result", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *ResultHandler) GetResult(c *gin.Context) {
	id := c.Param("id")
	result, err := h.Service.GetResult(context.Background(), id)
	if err != nil {
		NotFoundResponse(c, "Result not found")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ResultHandler) GetResultsByUser(c *gin.Context) {
	userID := c.Param("id")
	results, err := h.Service.GetResultsByUser(context.Background(), userID)
	if err != nil {
		InternalErrorResponse(c, "Failed to read results", err)
		return
	}
	c.JSON(http.StatusOK, results)
}

type attachRecommendationsRequest struct {
	Recommendations string `json:"recommendations" binding:"required"`
}

// AttachRecommendations caches AI recommendation text on a stored result.
func (h *ResultHandler) AttachRecommendations(c *gin.Context) {
	id := c.Param("id")
	var req attachRecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestResponse(c, "Invalid recommendations body", err)
		return
	}
	if err := h.Service.AttachRecommendations(context.Background(), id, req.Recommendations); err != nil {
		InternalErrorResponse(c, "Failed to attach recommendations", err)
		return
	}
	SuccessResponse(c, "Recommendations attached", gin.H{"id": id})
}
