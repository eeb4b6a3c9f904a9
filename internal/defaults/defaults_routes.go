package defaults

import (
	"go-guardconsole/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	guards := r.Group("/guards")
	guards.Use(auth)
	{
		guards.GET("/:id/defaults", middleware.RBACAuthorize(rbacService, "defaults", "read"), h.GetCalendar)
		guards.GET("/:id/defaults/range", middleware.RBACAuthorize(rbacService, "defaults", "read"), h.GetRange)
		guards.GET("/:id/defaults/:date", middleware.RBACAuthorize(rbacService, "defaults", "read"), h.GetDay)
	}
}
