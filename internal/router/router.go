package router

import (
	"github.com/gin-gonic/gin"

	"github.com/govilvipul/HealthcareCM/internal/config"
	"github.com/govilvipul/HealthcareCM/internal/handler"
	"github.com/govilvipul/HealthcareCM/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	caseH *handler.CaseHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Case review routes
	cases := v1.Group("/cases")
	cases.GET("", caseH.List)
	cases.GET("/export", caseH.Export)
	cases.GET("/:id", caseH.GetByID)
	cases.GET("/:id/document", caseH.GetDocument)
	cases.PATCH("/:id/status", caseH.UpdateStatus)

	// Dashboard tiles
	v1.GET("/metrics", caseH.Metrics)

	return r
}
