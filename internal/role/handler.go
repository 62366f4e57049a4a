package role

import (
	"strconv"

	"terminal-terrace/lms-service/internal/dto"
	"terminal-terrace/lms-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	service *RoleService
}

// list 角色列表
func (h *RoleHandler) list(c *gin.Context) {
	roles, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, roles)
}

// get 单个角色
func (h *RoleHandler) get(c *gin.Context) {
	id, parseErr := strconv.Atoi(c.Param("id"))
	if parseErr != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("角色 id 无效"),
		))
		return
	}

	found, err := h.service.GetRole(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, found)
}
