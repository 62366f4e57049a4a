package user

import (
	"terminal-terrace/lms-service/internal/cache"
	"terminal-terrace/lms-service/internal/database"
	"terminal-terrace/lms-service/internal/middleware"
	roleModel "terminal-terrace/lms-service/internal/model/role"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	service := NewUserService(database.PostgresDB, cache.NewRedisStore(database.RedisDB))
	h := &UserHandler{service: service}

	users := r.Group("/users")
	users.Use(middleware.JWTAuth())
	{
		users.GET("/:id", h.get) // 归属规则在 handler 内检查

		admin := users.Group("")
		admin.Use(middleware.RequireRoles(roleModel.Admin))
		{
			admin.POST("/register", h.register)
			admin.GET("", h.list)
			admin.DELETE("/:id", h.remove)
			admin.POST("/:id/assign-roles", h.assignRoles)
		}
	}
}
