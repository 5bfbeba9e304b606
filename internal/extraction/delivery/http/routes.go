package http

import (
	"github.com/gin-gonic/gin"

	"action-item-extractor/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Routes that reach the language model are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	items := rg.Group("/action-items")
	{
		items.POST("/extract", mw.RateLimit(), h.Extract)
		items.POST("/recover", mw.RateLimit(), h.Recover)
		items.POST("/prompt", h.Prompt)
		items.GET("/examples", h.Examples)
	}
}
