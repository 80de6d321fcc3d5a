package user

import (
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/middleware"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", handler.Me)
		users.GET("", middleware.RBACAuthorize(rbacService, "users", "read"), handler.GetAll)
		users.GET("/:id", middleware.RBACAuthorize(rbacService, "users", "read"), handler.GetById)
		users.POST("", middleware.RBACAuthorize(rbacService, "users", "create"), handler.Create)
	}
}
