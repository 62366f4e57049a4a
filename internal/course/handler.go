package course

import (
	"strconv"

	"terminal-terrace/lms-service/internal/dto"
	"terminal-terrace/lms-service/internal/middleware"
	"terminal-terrace/lms-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	service *CourseService
}

// list 课程列表
// @Summary 课程列表
// @Tags Course
// @Accept json
// @Produce json
// @Success 200 {object} dto.Response
// @Router /courses [get]
func (h *CourseHandler) list(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, courses)
}

// get 查询课程详情
// @Summary 查询课程详情
// @Tags Course
// @Accept json
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "课程不存在"
// @Router /courses/{id} [get]
func (h *CourseHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.service.GetCourse(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, found)
}

// create 创建课程（管理员或教师）
// @Summary 创建课程
// @Tags Course
// @Accept json
// @Produce json
// @Param request body CreateCourseRequest true "创建课程请求"
// @Success 201 {object} dto.Response
// @Router /courses [post]
func (h *CourseHandler) create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	created, err := h.service.CreateCourse(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, created)
}

// update 更新课程（管理员或教师）
// @Summary 更新课程
// @Tags Course
// @Accept json
// @Produce json
// @Param id path int true "课程ID"
// @Param request body UpdateCourseRequest true "更新课程请求"
// @Success 200 {object} dto.Response
// @Router /courses/{id} [put]
func (h *CourseHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	updated, err := h.service.UpdateCourse(c.Request.Context(), id, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, updated)
}

// remove 删除课程（管理员或教师）
// @Summary 删除课程
// @Tags Course
// @Accept json
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} dto.Response
// @Router /courses/{id} [delete]
func (h *CourseHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCourse(c.Request.Context(), id); err != nil {
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
			response.WithErrorMessage("课程 id 无效"),
		))
		return 0, false
	}
	return id, true
}
