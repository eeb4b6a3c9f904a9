package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the session endpoints. Login is throttled
// separately from the rest of the API.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth, loginLimiter gin.HandlerFunc) {
	group := r.Group("/auth")
	{
		group.POST("/login", loginLimiter, handler.Login)
		group.POST("/logout", handler.Logout)
		group.GET("/me", auth, handler.Me)
	}
}
