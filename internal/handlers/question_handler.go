package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"assessment-service/internal/models"
	"assessment-service/internal/service"
)

type BulkUploadRequest struct {
	Kind      string            `json:"kind" binding:"required"`
	Domain    string            `json:"domain" binding:"required"`
	Questions []models.Question `json:"questions" binding:"required"`
}

type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(s *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: s}
}

// BulkUpload is the administrative path that loads a question batch into one
// path-scoped collection.
func (h *QuestionHandler) BulkUpload(c *gin.Context) {
	var req BulkUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestResponse(c, "Invalid upload body", err)
		return
	}
	if err := h.Service.ValidateBatch(req.Kind, req.Domain, req.Questions); err != nil {
		BadRequestResponse(c, "Invalid question batch", err)
		return
	}

	count, err := h.Service.BulkUpload(context.Background(), req.Kind, req.Domain, req.Questions)
	if err != nil {
		InternalErrorResponse(c, "Failed to store question batch", err)
		return
	}
	SuccessResponse(c, "Questions uploaded", gin.H{"inserted": count, "kind": req.Kind, "domain": req.Domain})
}

// PoolInfo reports per-level document counts for one collection.
func (h *QuestionHandler) PoolInfo(c *gin.Context) {
	kind := c.Query("kind")
	domain := c.Query("domain")
	if kind == "" || domain == "" {
		BadRequestResponse(c, "kind and domain query parameters are required", nil)
		return
	}

	counts, err := h.Service.PoolInfo(context.Background(), kind, domain)
	if err != nil {
		InternalErrorResponse(c, "Failed to read pool info", err)
		return
	}
	SuccessResponse(c, "Pool info", gin.H{"kind": kind, "domain": domain, "counts": counts})
}
