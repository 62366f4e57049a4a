package login

import (
	"terminal-terrace/lms-service/internal/database"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	service := NewLoginService(database.PostgresDB)
	h := &LoginHandler{service: service}

	// 登录是唯一的公开入口，不挂认证中间件
	r.POST("/users/login", h.handle)
}
