package login

import (
	"terminal-terrace/lms-service/internal/dto"
	"terminal-terrace/lms-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	service *LoginService
}

func (h *LoginHandler) handle(c *gin.Context) {
	// 解析参数
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	result, err := h.service.Login(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, gin.H{
		"token": result.Token,
	})
}
