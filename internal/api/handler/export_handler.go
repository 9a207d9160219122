package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"uni-portal/backend/internal/service"
	"uni-portal/backend/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler handles schedule export endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportWeekXLSX downloads a week's schedule as a spreadsheet.
// GET /api/v1/weeks/:id/export/xlsx
func (h *ExportHandler) ExportWeekXLSX(c *gin.Context) {
	weekID := c.Param("id")
	if weekID == "" {
		response.BadRequest(c, 10001, "week id required")
		return
	}

	buf, filename, err := h.exportSvc.ExportScheduleXLSX(c.Request.Context(), weekID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, contentTypeXLSX, filename, buf.Bytes())
}

// ExportWeekICS downloads a week's schedule as a calendar file.
// GET /api/v1/weeks/:id/export/ics
func (h *ExportHandler) ExportWeekICS(c *gin.Context) {
	weekID := c.Param("id")
	if weekID == "" {
		response.BadRequest(c, 10001, "week id required")
		return
	}

	buf, filename, err := h.exportSvc.ExportScheduleICS(c.Request.Context(), weekID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, contentTypeICS, filename, buf.Bytes())
}

func writeDownload(c *gin.Context, contentType, filename string, body []byte) {
	encoded := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encoded)
	c.Data(http.StatusOK, contentType, body)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWeekNotFound):
		response.NotFound(c, 12001, "week not found")
	case errors.Is(err, service.ErrExportNoEntries):
		response.BadRequest(c, 20001, "week has no schedule entries")
	default:
		response.InternalError(c)
	}
}
