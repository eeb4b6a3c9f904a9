package cacheadmin

import (
	"go-guardconsole/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	cache := r.Group("/cache")
	cache.Use(auth)
	{
		cache.POST("/invalidate", middleware.RBACAuthorize(rbacService, "cache", "write"), h.Invalidate)
	}
}
