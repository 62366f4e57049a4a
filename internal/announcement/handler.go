package announcement

import (
	"strconv"

	"terminal-terrace/lms-service/internal/dto"
	"terminal-terrace/lms-service/internal/middleware"
	"terminal-terrace/lms-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	service *AnnouncementService
}

func (h *AnnouncementHandler) list(c *gin.Context) {
	announcements, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, announcements)
}

func (h *AnnouncementHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, found)
}

func (h *AnnouncementHandler) create(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	created, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, created)
}

func (h *AnnouncementHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, updated)
}

func (h *AnnouncementHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("公告 id 无效"),
		))
		return 0, false
	}
	return id, true
}
