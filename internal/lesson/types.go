package lesson

// CreateLessonRequest 创建课时请求
type CreateLessonRequest struct {
	CourseID int    `json:"course_id" binding:"required" example:"1"` // 所属课程
	Title    string `json:"title" binding:"required"`                 // 课时标题
	Content  string `json:"content"`                                  // 课时内容
	Position int    `json:"position"`                                 // 排序
}

// UpdateLessonRequest 更新课时请求
type UpdateLessonRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}
