package payroll

import (
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/middleware"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/payroll")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/:userId", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.Calculate)
		group.POST("/run", middleware.RBACAuthorize(rbacService, "payroll", "run"), handler.Run)
	}
}
