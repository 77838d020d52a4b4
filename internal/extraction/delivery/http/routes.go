package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/extract", mw.RateLimit(), h.Extract)
}
