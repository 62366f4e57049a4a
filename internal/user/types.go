package user

// RegisterRequest 注册请求
// RoleIDs 可选：为空时分配缺省 student 角色
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"newuser"`            // 用户名
	Email    string `json:"email" binding:"required,email" example:"user@example.com"` // 邮箱
	Password string `json:"password" binding:"required" example:"password123"`        // 密码
	RoleIDs  []int  `json:"role_ids" example:"1,2"`                                   // 角色 id 列表，可选
}

// AssignRolesRequest 角色重分配请求，全量替换
type AssignRolesRequest struct {
	RoleIDs []int `json:"role_ids" binding:"required" example:"1,2"` // 新的角色 id 列表
}
