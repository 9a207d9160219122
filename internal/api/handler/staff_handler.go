package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-portal/backend/internal/dto"
	"uni-portal/backend/internal/service"
	"uni-portal/backend/pkg/response"
)

// StaffHandler handles staff directory endpoints.
type StaffHandler struct {
	staffSvc service.StaffService
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(staffSvc service.StaffService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc}
}

// ListStaff lists the teacher directory.
// GET /api/v1/staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	staff, err := h.staffSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": staff})
}

// GetStaff returns one staff record.
// GET /api/v1/staff/:id
func (h *StaffHandler) GetStaff(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "staff id required")
		return
	}

	record, err := h.staffSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.OK(c, record)
}

// CreateStaff creates a staff record (admin only).
// POST /api/v1/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	record, err := h.staffSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.Created(c, record)
}

// UpdateStaff updates a staff record (admin only).
// PUT /api/v1/staff/:id
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "staff id required")
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	record, err := h.staffSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.OK(c, record)
}

// DeleteStaff deletes a staff record (admin only).
// DELETE /api/v1/staff/:id
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "staff id required")
		return
	}

	if err := h.staffSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *StaffHandler) handleStaffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStaffNotFound):
		response.NotFound(c, 19001, "staff record not found")
	default:
		response.InternalError(c)
	}
}
