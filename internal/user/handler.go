package user

import (
	"strconv"

	"terminal-terrace/lms-service/internal/dto"
	"terminal-terrace/lms-service/internal/middleware"
	roleModel "terminal-terrace/lms-service/internal/model/role"
	"terminal-terrace/lms-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *UserService
}

// register 注册新用户（仅管理员）
// @Summary 注册新用户
// @Description 管理员创建用户；不指定角色时分配缺省 student 角色，指定的角色 id 不存在时跳过
// @Tags User
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册请求"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "参数错误或用户名/邮箱已被占用"
// @Router /users/register [post]
func (h *UserHandler) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.CreatedResponse(c, created)
}

// list 用户列表（仅管理员）
// @Summary 用户列表
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} dto.Response
// @Router /users [get]
func (h *UserHandler) list(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, users)
}

// get 查询单个用户
// 归属规则：非管理员只能查自己的记录。
// 归属不符返回 403 而不是 404 —— "存在但无权" 与 "不存在" 是可观测的区别
// @Summary 查询单个用户
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.Response "非管理员查询他人记录"
// @Failure 404 {object} dto.Response "用户不存在"
// @Router /users/{id} [get]
func (h *UserHandler) get(c *gin.Context) {
	id, parseErr := strconv.Atoi(c.Param("id"))
	if parseErr != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("用户 id 无效"),
		))
		return
	}

	if !middleware.HasRole(c, roleModel.Admin) && middleware.CurrentUserID(c) != id {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只能查看自己的用户信息"),
		))
		return
	}

	found, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, found)
}

// assignRoles 全量替换用户角色（仅管理员）
// @Summary 分配用户角色
// @Description 全量替换：请求中的角色集合完全取代原有成员关系；任一角色 id 不存在则整体失败
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param request body AssignRolesRequest true "角色 id 集合"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "用户或角色不存在"
// @Router /users/{id}/assign-roles [post]
func (h *UserHandler) assignRoles(c *gin.Context) {
	id, parseErr := strconv.Atoi(c.Param("id"))
	if parseErr != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("用户 id 无效"),
		))
		return
	}

	var req AssignRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	if err := h.service.AssignRoles(c.Request.Context(), id, req.RoleIDs); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, nil)
}

// remove 删除用户（仅管理员）
// @Summary 删除用户
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} dto.Response
// @Router /users/{id} [delete]
func (h *UserHandler) remove(c *gin.Context) {
	id, parseErr := strconv.Atoi(c.Param("id"))
	if parseErr != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("用户 id 无效"),
		))
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, nil)
}
