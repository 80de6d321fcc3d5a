package task

import (
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/middleware"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/tasks")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("", middleware.RBACAuthorize(rbacService, "tasks", "assign"), handler.Assign)
		group.GET("/mine", handler.Mine)
		group.GET("/assigned", middleware.RBACAuthorize(rbacService, "tasks", "assign"), handler.AssignedBy)
		group.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "tasks", "update"), handler.UpdateStatus)
	}
}
