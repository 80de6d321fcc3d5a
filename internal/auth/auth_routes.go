package auth

import (
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		// Login is brute-force sensitive; 1 req/s with a small burst per IP.
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), handler.Login)
		authGroup.POST("/change-password", middleware.AuthMiddleware(), handler.ChangePassword)
	}
}
