package lesson

import (
	"terminal-terrace/lms-service/internal/cache"
	"terminal-terrace/lms-service/internal/database"
	"terminal-terrace/lms-service/internal/middleware"
	roleModel "terminal-terrace/lms-service/internal/model/role"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	service := NewLessonService(database.PostgresDB, cache.NewRedisStore(database.RedisDB))
	h := &LessonHandler{service: service}

	lessons := r.Group("/lessons")
	lessons.Use(middleware.JWTAuth())
	{
		lessons.GET("/:id", h.get)

		write := lessons.Group("")
		write.Use(middleware.RequireRoles(roleModel.Admin, roleModel.Teacher))
		{
			write.POST("", h.create)
			write.PUT("/:id", h.update)
			write.DELETE("/:id", h.remove)
		}
	}

	// 课程维度的课时列表
	r.GET("/courses/:id/lessons", middleware.JWTAuth(), h.listByCourse)
}
