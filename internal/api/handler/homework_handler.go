package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-portal/backend/internal/dto"
	"uni-portal/backend/internal/service"
	"uni-portal/backend/pkg/response"
)

// HomeworkHandler handles homework endpoints.
type HomeworkHandler struct {
	homeworkSvc service.HomeworkService
}

// NewHomeworkHandler creates a HomeworkHandler.
func NewHomeworkHandler(homeworkSvc service.HomeworkService) *HomeworkHandler {
	return &HomeworkHandler{homeworkSvc: homeworkSvc}
}

// ListHomework lists homework, by default for the current week.
// GET /api/v1/homework?week_id=xxx|all
func (h *HomeworkHandler) ListHomework(c *gin.Context) {
	homework, err := h.homeworkSvc.List(c.Request.Context(), c.Query("week_id"))
	if err != nil {
		h.handleHomeworkError(c, err)
		return
	}

	response.OK(c, gin.H{"list": homework})
}

// GetHomework returns one homework item.
// GET /api/v1/homework/:id
func (h *HomeworkHandler) GetHomework(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "homework id required")
		return
	}

	hw, err := h.homeworkSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleHomeworkError(c, err)
		return
	}

	response.OK(c, hw)
}

// CreateHomework creates a homework item.
// POST /api/v1/homework
func (h *HomeworkHandler) CreateHomework(c *gin.Context) {
	var req dto.CreateHomeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	hw, err := h.homeworkSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleHomeworkError(c, err)
		return
	}

	response.Created(c, hw)
}

// UpdateHomework updates a homework item.
// PUT /api/v1/homework/:id
func (h *HomeworkHandler) UpdateHomework(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "homework id required")
		return
	}

	var req dto.UpdateHomeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	hw, err := h.homeworkSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleHomeworkError(c, err)
		return
	}

	response.OK(c, hw)
}

// DeleteHomework deletes a homework item.
// DELETE /api/v1/homework/:id
func (h *HomeworkHandler) DeleteHomework(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "homework id required")
		return
	}

	if err := h.homeworkSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleHomeworkError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *HomeworkHandler) handleHomeworkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHomeworkNotFound):
		response.NotFound(c, 15001, "homework not found")
	case errors.Is(err, service.ErrWeekNotFound):
		response.NotFound(c, 12001, "week not found")
	case errors.Is(err, service.ErrWeekDateInvalid):
		response.BadRequest(c, 15002, "invalid due date")
	default:
		response.InternalError(c)
	}
}
