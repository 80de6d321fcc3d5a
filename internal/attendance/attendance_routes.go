package attendance

import (
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/middleware"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/attendance")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/clock-in", middleware.RBACAuthorize(rbacService, "attendance", "write"), handler.ClockIn)
		group.POST("/clock-out", middleware.RBACAuthorize(rbacService, "attendance", "write"), handler.ClockOut)
		group.GET("/history", handler.History)
	}
}
