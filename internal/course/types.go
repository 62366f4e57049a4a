package course

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required" example:"Go 入门"` // 课程标题
	Description string `json:"description" example:"从零开始"`               // 课程描述
}

// UpdateCourseRequest 更新课程请求
type UpdateCourseRequest struct {
	Title       string `json:"title" binding:"required"` // 课程标题
	Description string `json:"description"`              // 课程描述
}
