package timesheet

import (
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/middleware"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/timesheets")
	group.Use(middleware.AuthMiddleware())
	{
		group.PUT("/entries", middleware.RBACAuthorize(rbacService, "timesheets", "write"), handler.UpsertEntry)
		group.GET("/mine", handler.Week)
		group.POST("/submit", middleware.RBACAuthorize(rbacService, "timesheets", "write"), handler.Submit)
		group.GET("/submitted", middleware.RBACAuthorize(rbacService, "timesheets", "approve"), handler.Submitted)
		group.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "timesheets", "approve"), handler.Approve)
		group.POST("/:id/reopen-requests", middleware.RBACAuthorize(rbacService, "timesheets", "write"), handler.RequestReopen)
		group.GET("/reopen-requests/pending", middleware.RBACAuthorize(rbacService, "timesheets", "approve"), handler.PendingReopens)
		group.POST("/reopen-requests/:id/approve", middleware.RBACAuthorize(rbacService, "timesheets", "approve"), handler.ApproveReopen)
		group.POST("/reopen-requests/:id/reject", middleware.RBACAuthorize(rbacService, "timesheets", "approve"), handler.RejectReopen)
	}
}
