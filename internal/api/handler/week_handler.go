package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-portal/backend/internal/dto"
	"uni-portal/backend/internal/service"
	"uni-portal/backend/pkg/response"
)

// WeekHandler handles week lifecycle endpoints.
type WeekHandler struct {
	weekSvc service.WeekService
}

// NewWeekHandler creates a WeekHandler.
func NewWeekHandler(weekSvc service.WeekService) *WeekHandler {
	return &WeekHandler{weekSvc: weekSvc}
}

// ListWeeks lists all weeks ordered by start date.
// GET /api/v1/weeks
func (h *WeekHandler) ListWeeks(c *gin.Context) {
	weeks, err := h.weekSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": weeks})
}

// GetCurrentWeek returns the current week (or the nearest future one).
// GET /api/v1/weeks/current
func (h *WeekHandler) GetCurrentWeek(c *gin.Context) {
	week, err := h.weekSvc.GetCurrent(c.Request.Context())
	if err != nil {
		h.handleWeekError(c, err)
		return
	}

	response.OK(c, week)
}

// GetWeek returns one week.
// GET /api/v1/weeks/:id
func (h *WeekHandler) GetWeek(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "week id required")
		return
	}

	week, err := h.weekSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleWeekError(c, err)
		return
	}

	response.OK(c, week)
}

// CreateWeek creates a week manually (admin only).
// POST /api/v1/weeks
func (h *WeekHandler) CreateWeek(c *gin.Context) {
	var req dto.CreateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	week, err := h.weekSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleWeekError(c, err)
		return
	}

	response.Created(c, week)
}

// UpdateWeek updates a week (admin only).
// PUT /api/v1/weeks/:id
func (h *WeekHandler) UpdateWeek(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "week id required")
		return
	}

	var req dto.UpdateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	week, err := h.weekSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleWeekError(c, err)
		return
	}

	response.OK(c, week)
}

// DeleteWeek deletes a week and its schedule (admin only).
// DELETE /api/v1/weeks/:id
func (h *WeekHandler) DeleteWeek(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "week id required")
		return
	}

	if err := h.weekSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleWeekError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *WeekHandler) handleWeekError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWeekNotFound):
		response.NotFound(c, 12001, "week not found")
	case errors.Is(err, service.ErrWeekDateInvalid):
		response.BadRequest(c, 12002, "invalid week dates")
	case errors.Is(err, service.ErrNoCurrentWeek):
		response.NotFound(c, 12003, "no current or upcoming week")
	default:
		response.InternalError(c)
	}
}
