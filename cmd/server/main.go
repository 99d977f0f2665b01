package main

import (
	"fmt"
	"log"

	"vendorguard/internal/config"
	"vendorguard/internal/handler"
	"vendorguard/internal/repository/postgres"
	"vendorguard/internal/router"
	"vendorguard/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	supplierRepo := postgres.NewSupplierRepo(db)

	// Initialize services
	complianceSvc := service.NewComplianceService(supplierRepo, nil, cfg.Aggregation.Concurrency)

	// Initialize handlers
	complianceH := handler.NewComplianceHandler(complianceSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, complianceH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
