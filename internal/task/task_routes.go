package task

import (
	"go-guardconsole/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	r.GET("/tasks", auth, middleware.RBACAuthorize(rbacService, "tasks", "read"), h.List)
}
