package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vendorguard/internal/compliance"
	"vendorguard/internal/domain"
	"vendorguard/internal/export"
	"vendorguard/internal/port"
)

// ComplianceService exposes compliance evaluation to the transport layer.
type ComplianceService interface {
	SupplierReport(ctx context.Context, supplierID uuid.UUID) (*domain.ComplianceReport, error)
	SupplierStatus(ctx context.Context, supplierID uuid.UUID) (*domain.ComplianceStatus, error)
	FleetSummary(ctx context.Context) (*domain.ComplianceSummaryReport, error)
	Dashboard(ctx context.Context) (*export.DashboardPayload, error)
}

type complianceService struct {
	directory  port.SupplierDirectory
	generator  *compliance.Generator
	aggregator *compliance.Aggregator
	now        func() time.Time
}

// NewComplianceService creates a ComplianceService. A nil now falls back to
// time.Now; concurrency bounds fleet aggregation.
func NewComplianceService(directory port.SupplierDirectory, now func() time.Time, concurrency int) ComplianceService {
	if now == nil {
		now = time.Now
	}
	return &complianceService{
		directory:  directory,
		generator:  compliance.NewGenerator(directory, now),
		aggregator: compliance.NewAggregator(directory, now, concurrency),
		now:        now,
	}
}

func (s *complianceService) SupplierReport(ctx context.Context, supplierID uuid.UUID) (*domain.ComplianceReport, error) {
	return s.generator.Generate(ctx, supplierID)
}

func (s *complianceService) SupplierStatus(ctx context.Context, supplierID uuid.UUID) (*domain.ComplianceStatus, error) {
	record, err := s.directory.Lookup(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("lookup returned nil record for supplier %s: %w", supplierID, domain.ErrInvalidSupplierRecord)
	}
	status := compliance.ComputeStatus(record, s.now().UTC())
	return &status, nil
}

func (s *complianceService) FleetSummary(ctx context.Context) (*domain.ComplianceSummaryReport, error) {
	ids, err := s.directory.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	return s.aggregator.Aggregate(ctx, ids)
}

func (s *complianceService) Dashboard(ctx context.Context) (*export.DashboardPayload, error) {
	summary, err := s.FleetSummary(ctx)
	if err != nil {
		return nil, err
	}
	payload := export.Dashboard(summary)
	return &payload, nil
}
