package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-service/internal/models"
	"assessment-service/internal/service"
)

type ProfileHandler struct {
	Service *service.ProfileService
}

func NewProfileHandler(s *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: s}
}

func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		BadRequestResponse(c, "Invalid profile body", err)
		return
	}
	if profile.UserID == "" {
		profile.UserID = c.GetHeader("X-User-ID")
	}
	if err := profile.Validate(); err != nil {
		BadRequestResponse(c, "Invalid profile", err)
		return
	}

	if err := h.Service.SaveProfile(context.Background(), &profile); err != nil {
		InternalErrorResponse(c, "Failed to save profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.Param("id")
	profile, err := h.Service.GetProfile(context.Background(), userID)
	if err != nil {
		NotFoundResponse(c, "Profile not found")
		return
	}
	c.JSON(http.StatusOK, profile)
}
