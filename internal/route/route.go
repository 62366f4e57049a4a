package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"terminal-terrace/lms-service/internal/announcement"
	"terminal-terrace/lms-service/internal/course"
	"terminal-terrace/lms-service/internal/lesson"
	"terminal-terrace/lms-service/internal/login"
	"terminal-terrace/lms-service/internal/message"
	"terminal-terrace/lms-service/internal/role"
	"terminal-terrace/lms-service/internal/user"
)

func initRoute(r *gin.Engine) {
	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		login.RegisterRoutes(apiV1)
		user.RegisterRoutes(apiV1)
		role.RegisterRoutes(apiV1)
		course.RegisterRoutes(apiV1)
		lesson.RegisterRoutes(apiV1)
		message.RegisterRoutes(apiV1)
		announcement.RegisterRoutes(apiV1)
	}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// 允许多个前端端口
	allowedOrigins := []string{
		"http://localhost:3000",
		"http://localhost:3001",
	}

	// 如果设置了环境变量，添加到允许列表
	if envOrigin := os.Getenv("FRONTEND_URL"); envOrigin != "" {
		allowedOrigins = append(allowedOrigins, envOrigin)
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	initRoute(r)

	return r
}
