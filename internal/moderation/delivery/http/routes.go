package http

import (
	"github.com/gin-gonic/gin"

	"iffy-moderation/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route goes through the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	moderations := rg.Group("/moderations", mw.Auth())
	{
		moderations.POST("", h.Moderate)
		moderations.GET("", h.List)
		moderations.GET("/:id", h.Detail)
	}
}
