package weekendwork

import (
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/middleware"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/weekend-work")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("", middleware.RBACAuthorize(rbacService, "weekend-work", "request"), handler.Submit)
		group.GET("/mine", handler.Mine)
		group.GET("/submitted", middleware.RBACAuthorize(rbacService, "weekend-work", "approve"), handler.Submitted)
		group.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "weekend-work", "approve"), handler.Approve)
		group.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "weekend-work", "approve"), handler.Reject)
	}
}
