package shift

import (
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/middleware"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/shifts")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("", middleware.RBACAuthorize(rbacService, "shifts", "request"), handler.Request)
		group.GET("/mine", handler.Mine)
		group.GET("/pending", middleware.RBACAuthorize(rbacService, "shifts", "approve"), handler.Pending)
		group.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "shifts", "approve"), handler.Approve)
		group.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "shifts", "approve"), handler.Reject)
	}
}
