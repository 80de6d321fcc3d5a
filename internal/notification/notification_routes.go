package notification

import (
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/notifications")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/mine", handler.Mine)
		group.POST("/:id/read", handler.MarkRead)
		group.POST("/read-all", handler.MarkAllRead)
	}
}
