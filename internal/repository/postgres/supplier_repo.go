package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vendorguard/internal/domain"
)

// SupplierRepo resolves supplier records and their document sets from
// Postgres. It implements port.SupplierDirectory.
type SupplierRepo struct {
	db *sqlx.DB
}

// NewSupplierRepo creates a new SupplierRepo.
func NewSupplierRepo(db *sqlx.DB) *SupplierRepo {
	return &SupplierRepo{db: db}
}

// Lookup loads one supplier with its full document set. Returns
// domain.ErrSupplierNotFound when no row matches.
func (r *SupplierRepo) Lookup(ctx context.Context, supplierID uuid.UUID) (*domain.SupplierRecord, error) {
	var record domain.SupplierRecord
	err := r.db.GetContext(ctx, &record, `
		SELECT id, company_name, business_type
		FROM suppliers
		WHERE id = $1 AND is_active = true`, supplierID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading supplier %s: %w", supplierID, err)
	}

	err = r.db.SelectContext(ctx, &record.Documents, `
		SELECT id, document_type, category, title, file_name, file_size,
		       content_type, issue_date, expiry_date, status,
		       verification_status, is_required, uploaded_at, last_modified
		FROM supplier_documents
		WHERE supplier_id = $1
		ORDER BY uploaded_at, id`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("loading documents for supplier %s: %w", supplierID, err)
	}
	return &record, nil
}

// ListIDs returns the ids of all active suppliers.
func (r *SupplierRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, `
		SELECT id FROM suppliers WHERE is_active = true ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing supplier ids: %w", err)
	}
	return ids, nil
}
