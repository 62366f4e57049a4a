package message

import (
	"terminal-terrace/lms-service/internal/cache"
	"terminal-terrace/lms-service/internal/database"
	"terminal-terrace/lms-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	service := NewMessageService(database.PostgresDB, cache.NewRedisStore(database.RedisDB))
	h := &MessageHandler{service: service}

	messages := r.Group("/messages")
	messages.Use(middleware.JWTAuth())
	{
		messages.GET("", h.inbox)
		messages.GET("/:id", h.get)
		messages.POST("", h.send)
		messages.DELETE("/:id", h.remove)
	}
}
