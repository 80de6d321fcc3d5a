package leave

import (
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/middleware"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		if redisClient != nil {
			leaves.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "leaves", "request"),
				handler.Request,
			)
		} else {
			leaves.POST("", middleware.RBACAuthorize(rbacService, "leaves", "request"), handler.Request)
		}
		leaves.GET("/mine", handler.MyLeaves)
		leaves.GET("/pending", middleware.RBACAuthorize(rbacService, "leaves", "approve"), handler.Pending)
		leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "leaves", "approve"), handler.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "leaves", "approve"), handler.Reject)
	}
}
