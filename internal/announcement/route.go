package announcement

import (
	"terminal-terrace/lms-service/internal/cache"
	"terminal-terrace/lms-service/internal/database"
	"terminal-terrace/lms-service/internal/middleware"
	roleModel "terminal-terrace/lms-service/internal/model/role"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	service := NewAnnouncementService(database.PostgresDB, cache.NewRedisStore(database.RedisDB))
	h := &AnnouncementHandler{service: service}

	announcements := r.Group("/announcements")
	announcements.Use(middleware.JWTAuth())
	{
		announcements.GET("", h.list)
		announcements.GET("/:id", h.get)

		// 公告只有管理员可发布与维护
		admin := announcements.Group("")
		admin.Use(middleware.RequireRoles(roleModel.Admin))
		{
			admin.POST("", h.create)
			admin.PUT("/:id", h.update)
			admin.DELETE("/:id", h.remove)
		}
	}
}
