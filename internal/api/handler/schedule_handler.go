package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-portal/backend/internal/dto"
	"uni-portal/backend/internal/service"
	"uni-portal/backend/pkg/response"
)

// ScheduleHandler handles manual schedule-entry endpoints.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// GetWeekSchedule returns a week's entries grouped by day.
// GET /api/v1/weeks/:id/schedule
func (h *ScheduleHandler) GetWeekSchedule(c *gin.Context) {
	weekID := c.Param("id")
	if weekID == "" {
		response.BadRequest(c, 10001, "week id required")
		return
	}

	schedule, err := h.scheduleSvc.ListByWeek(c.Request.Context(), weekID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, schedule)
}

// GetEntry returns one schedule entry.
// GET /api/v1/schedule/:id
func (h *ScheduleHandler) GetEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "entry id required")
		return
	}

	entry, err := h.scheduleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, entry)
}

// CreateEntry creates a schedule entry (admin only).
// POST /api/v1/schedule
func (h *ScheduleHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	entry, err := h.scheduleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, entry)
}

// UpdateEntry updates a schedule entry (admin only).
// PUT /api/v1/schedule/:id
func (h *ScheduleHandler) UpdateEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "entry id required")
		return
	}

	var req dto.UpdateScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	entry, err := h.scheduleSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, entry)
}

// DeleteEntry deletes a schedule entry (admin only).
// DELETE /api/v1/schedule/:id
func (h *ScheduleHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "entry id required")
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWeekNotFound):
		response.NotFound(c, 12001, "week not found")
	case errors.Is(err, service.ErrEntryNotFound):
		response.NotFound(c, 13001, "schedule entry not found")
	case errors.Is(err, service.ErrEntrySlotTaken):
		response.Conflict(c, 13002, "this day and slot already has a lesson")
	case errors.Is(err, service.ErrEntryTimeInvalid):
		response.BadRequest(c, 13003, "explicit times require custom_time")
	default:
		response.InternalError(c)
	}
}
