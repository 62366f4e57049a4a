package lesson

import (
	"strconv"

	"terminal-terrace/lms-service/internal/dto"
	"terminal-terrace/lms-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	service *LessonService
}

func (h *LessonHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	found, err := h.service.GetLesson(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, found)
}

// listByCourse 某课程的课时列表
func (h *LessonHandler) listByCourse(c *gin.Context) {
	courseID, ok := parseID(c, "id")
	if !ok {
		return
	}

	lessons, err := h.service.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, lessons)
}

func (h *LessonHandler) create(c *gin.Context) {
	var req CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	created, err := h.service.CreateLesson(c.Request.Context(), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, created)
}

func (h *LessonHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	updated, err := h.service.UpdateLesson(c.Request.Context(), id, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, updated)
}

func (h *LessonHandler) remove(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteLesson(c.Request.Context(), id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("id 无效"),
		))
		return 0, false
	}
	return id, true
}
