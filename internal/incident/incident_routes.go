package incident

import (
	"go-guardconsole/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	group := r.Group("/incidents")
	group.Use(auth)
	{
		group.GET("", middleware.RBACAuthorize(rbacService, "incidents", "read"), h.List)
		group.POST("/:id/attachments", middleware.RBACAuthorize(rbacService, "incidents", "write"), h.UploadAttachment)
	}
}
