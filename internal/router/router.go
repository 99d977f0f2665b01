package router

import (
	"github.com/gin-gonic/gin"

	"vendorguard/internal/config"
	"vendorguard/internal/handler"
	"vendorguard/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	complianceH *handler.ComplianceHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

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

	// Per-supplier compliance
	suppliers := v1.Group("/suppliers")
	suppliers.GET("/:id/compliance", complianceH.GetSupplierReport)
	suppliers.GET("/:id/compliance/status", complianceH.GetSupplierStatus)
	suppliers.GET("/:id/compliance/export", complianceH.ExportSupplierReport)

	// Fleet-wide compliance
	fleet := v1.Group("/compliance")
	fleet.GET("/summary", complianceH.GetSummary)
	fleet.GET("/summary/export", complianceH.ExportSummary)
	fleet.GET("/dashboard", complianceH.GetDashboard)

	return r
}
