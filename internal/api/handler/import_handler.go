package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-portal/backend/internal/dto"
	"uni-portal/backend/internal/service"
	"uni-portal/backend/pkg/response"
)

// ImportHandler handles the schedule import endpoint.
type ImportHandler struct {
	importSvc service.ImportService
}

// NewImportHandler creates an ImportHandler.
func NewImportHandler(importSvc service.ImportService) *ImportHandler {
	return &ImportHandler{importSvc: importSvc}
}

// ImportWeeks imports a batch of scraped weeks (admin only).
// POST /api/v1/import/weeks
//
// The response is always the full per-week report: partial failure is a
// normal result here, not an HTTP error.
func (h *ImportHandler) ImportWeeks(c *gin.Context) {
	var req dto.ImportWeeksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	report, err := h.importSvc.ImportWeeks(c.Request.Context(), req.Weeks)
	if err != nil {
		if errors.Is(err, service.ErrImportEmptyBatch) {
			response.BadRequest(c, 14001, "import batch is empty")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, report)
}
