package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uni-portal/backend/internal/dto"
	"uni-portal/backend/internal/service"
	"uni-portal/backend/pkg/response"
)

// ExamHandler handles exam calendar endpoints.
type ExamHandler struct {
	examSvc service.ExamService
}

// NewExamHandler creates an ExamHandler.
func NewExamHandler(examSvc service.ExamService) *ExamHandler {
	return &ExamHandler{examSvc: examSvc}
}

// ListExams lists exams; ?upcoming=true keeps only today and later.
// GET /api/v1/exams
func (h *ExamHandler) ListExams(c *gin.Context) {
	var (
		exams []dto.ExamResponse
		err   error
	)
	if c.Query("upcoming") == "true" {
		exams, err = h.examSvc.ListUpcoming(c.Request.Context())
	} else {
		exams, err = h.examSvc.List(c.Request.Context())
	}
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": exams})
}

// GetExam returns one exam.
// GET /api/v1/exams/:id
func (h *ExamHandler) GetExam(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "exam id required")
		return
	}

	exam, err := h.examSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleExamError(c, err)
		return
	}

	response.OK(c, exam)
}

// CreateExam creates an exam (admin only).
// POST /api/v1/exams
func (h *ExamHandler) CreateExam(c *gin.Context) {
	var req dto.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	exam, err := h.examSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleExamError(c, err)
		return
	}

	response.Created(c, exam)
}

// UpdateExam updates an exam (admin only).
// PUT /api/v1/exams/:id
func (h *ExamHandler) UpdateExam(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "exam id required")
		return
	}

	var req dto.UpdateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	exam, err := h.examSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleExamError(c, err)
		return
	}

	response.OK(c, exam)
}

// DeleteExam deletes an exam (admin only).
// DELETE /api/v1/exams/:id
func (h *ExamHandler) DeleteExam(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "exam id required")
		return
	}

	if err := h.examSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleExamError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ExamHandler) handleExamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExamNotFound):
		response.NotFound(c, 16001, "exam not found")
	case errors.Is(err, service.ErrExamDateInvalid):
		response.BadRequest(c, 16002, "invalid exam date")
	default:
		response.InternalError(c)
	}
}
