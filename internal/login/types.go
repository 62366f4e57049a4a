package login

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"student1"`    // 用户名
	Password string `json:"password" binding:"required" example:"password123"` // 密码
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOi..."` // 访问令牌
}
