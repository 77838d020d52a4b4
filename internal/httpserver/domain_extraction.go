package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	extractionHTTP "meeting-task-extractor/internal/extraction/delivery/http"
	"meeting-task-extractor/internal/middleware"
)

// setupExtractionDomain creates the extraction handler and registers its routes.
// The use case is built in main so the CLI can share the same wiring.
func (srv HTTPServer) setupExtractionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := extractionHTTP.New(srv.l, srv.extractionUC)

	// registers /api/v1/extract
	extractionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Extraction domain registered (strategy=%s)", srv.extractionUC.Strategy())
	return nil
}
