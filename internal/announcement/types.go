package announcement

// CreateAnnouncementRequest 发布公告请求
type CreateAnnouncementRequest struct {
	Title string `json:"title" binding:"required"` // 标题
	Body  string `json:"body"`                     // 正文
}

// UpdateAnnouncementRequest 更新公告请求
type UpdateAnnouncementRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}
