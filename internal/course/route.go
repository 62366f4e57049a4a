package course

import (
	"terminal-terrace/lms-service/internal/cache"
	"terminal-terrace/lms-service/internal/database"
	"terminal-terrace/lms-service/internal/middleware"
	roleModel "terminal-terrace/lms-service/internal/model/role"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	service := NewCourseService(database.PostgresDB, cache.NewRedisStore(database.RedisDB))
	h := &CourseHandler{service: service}

	courses := r.Group("/courses")
	courses.Use(middleware.JWTAuth())
	{
		courses.GET("", h.list)
		courses.GET("/:id", h.get)

		// 写操作仅管理员与教师
		write := courses.Group("")
		write.Use(middleware.RequireRoles(roleModel.Admin, roleModel.Teacher))
		{
			write.POST("", h.create)
			write.PUT("/:id", h.update)
			write.DELETE("/:id", h.remove)
		}
	}
}
