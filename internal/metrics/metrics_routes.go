package metrics

import (
	"go-guardconsole/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	readMetrics := middleware.RBACAuthorize(rbacService, "metrics", "read")

	r.GET("/clients/:id/metrics", auth, readMetrics, h.ClientSummary())
	r.GET("/guards/:id/metrics", auth, readMetrics, h.GuardSummary())
}
