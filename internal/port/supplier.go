package port

import (
	"context"

	"github.com/google/uuid"

	"vendorguard/internal/domain"
)

// SupplierLookup resolves a supplier id to its raw record (identity,
// business type, submitted documents). Implementations return
// domain.ErrSupplierNotFound when the id has no resolvable record.
type SupplierLookup interface {
	Lookup(ctx context.Context, supplierID uuid.UUID) (*domain.SupplierRecord, error)
}

// SupplierDirectory extends SupplierLookup with enumeration, used by
// fleet-wide aggregation.
type SupplierDirectory interface {
	SupplierLookup
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}
