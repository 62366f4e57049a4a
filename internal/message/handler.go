package message

import (
	"strconv"

	"terminal-terrace/lms-service/internal/dto"
	"terminal-terrace/lms-service/internal/middleware"
	roleModel "terminal-terrace/lms-service/internal/model/role"
	"terminal-terrace/lms-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service *MessageService
}

// inbox 当前用户的收件箱
func (h *MessageHandler) inbox(c *gin.Context) {
	messages, err := h.service.Inbox(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, messages)
}

// get 查询单条私信
// 只有收件人、发件人和管理员可见，归属不符返回 403
func (h *MessageHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.service.GetMessage(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)
	if !middleware.HasRole(c, roleModel.Admin) && found.RecipientID != userID && found.SenderID != userID {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("无权查看该私信"),
		))
		return
	}

	dto.SuccessResponse(c, found)
}

func (h *MessageHandler) send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	created, err := h.service.Send(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, created)
}

// remove 删除私信，收件人或管理员可删
func (h *MessageHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.service.GetMessage(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	if !middleware.HasRole(c, roleModel.Admin) && found.RecipientID != middleware.CurrentUserID(c) {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("无权删除该私信"),
		))
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
			response.WithErrorMessage("私信 id 无效"),
		))
		return 0, false
	}
	return id, true
}
