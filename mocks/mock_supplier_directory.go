package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vendorguard/internal/domain"
)

type MockSupplierDirectory struct {
	mock.Mock
}

func (m *MockSupplierDirectory) Lookup(ctx context.Context, supplierID uuid.UUID) (*domain.SupplierRecord, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplierRecord), args.Error(1)
}

func (m *MockSupplierDirectory) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}
