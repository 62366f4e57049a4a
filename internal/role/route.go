package role

import (
	"terminal-terrace/lms-service/internal/cache"
	"terminal-terrace/lms-service/internal/database"
	"terminal-terrace/lms-service/internal/middleware"
	roleModel "terminal-terrace/lms-service/internal/model/role"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	service := NewRoleService(database.PostgresDB, cache.NewRedisStore(database.RedisDB))
	h := &RoleHandler{service: service}

	roles := r.Group("/roles")
	roles.Use(middleware.JWTAuth(), middleware.RequireRoles(roleModel.Admin))
	{
		roles.GET("", h.list)
		roles.GET("/:id", h.get)
	}
}
