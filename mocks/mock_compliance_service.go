package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vendorguard/internal/domain"
	"vendorguard/internal/export"
)

type MockComplianceService struct {
	mock.Mock
}

func (m *MockComplianceService) SupplierReport(ctx context.Context, supplierID uuid.UUID) (*domain.ComplianceReport, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComplianceReport), args.Error(1)
}

func (m *MockComplianceService) SupplierStatus(ctx context.Context, supplierID uuid.UUID) (*domain.ComplianceStatus, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComplianceStatus), args.Error(1)
}

func (m *MockComplianceService) FleetSummary(ctx context.Context) (*domain.ComplianceSummaryReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComplianceSummaryReport), args.Error(1)
}

func (m *MockComplianceService) Dashboard(ctx context.Context) (*export.DashboardPayload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.DashboardPayload), args.Error(1)
}
