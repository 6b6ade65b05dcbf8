package http

import (
	"github.com/gin-gonic/gin"

	"customer-support/internal/middleware"
)

// RegisterRoutes maps the versioned conversation API onto rg (/api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.POST("/route", h.Route)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", mw.RateLimit(), h.ClearSession)
	}
}

// RegisterCompatRoutes maps the legacy endpoint onto rg (/api).
func RegisterCompatRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/run", mw.RateLimit(), h.Run)
}
