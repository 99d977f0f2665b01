package domain

import (
	"time"

	"github.com/google/uuid"
)

// SupplierDocument is an immutable snapshot of a document submitted by a
// supplier. The document store owns the record; the engine only reads it.
type SupplierDocument struct {
	ID                 uuid.UUID          `db:"id" json:"id"`
	Type               string             `db:"document_type" json:"document_type"`
	Category           string             `db:"category" json:"category"`
	Title              string             `db:"title" json:"title"`
	FileName           string             `db:"file_name" json:"file_name"`
	FileSize           int64              `db:"file_size" json:"file_size"`
	ContentType        string             `db:"content_type" json:"content_type"`
	IssueDate          time.Time          `db:"issue_date" json:"issue_date"`
	ExpiryDate         *time.Time         `db:"expiry_date" json:"expiry_date,omitempty"`
	Status             DocumentStatus     `db:"status" json:"status"`
	VerificationStatus VerificationStatus `db:"verification_status" json:"verification_status"`
	Required           bool               `db:"is_required" json:"is_required"`
	UploadedAt         time.Time          `db:"uploaded_at" json:"uploaded_at"`
	LastModified       time.Time          `db:"last_modified" json:"last_modified"`
}

// SupplierRecord is the raw supplier data resolved by the caller-supplied
// lookup: identity, business type, and the full submitted document set.
type SupplierRecord struct {
	ID           uuid.UUID          `db:"id" json:"id"`
	CompanyName  string             `db:"company_name" json:"company_name"`
	BusinessType BusinessType       `db:"business_type" json:"business_type"`
	Documents    []SupplierDocument `json:"documents"`
}

// RequirementCheck records whether one catalog requirement is satisfied.
type RequirementCheck struct {
	Type       string         `json:"type"`
	Required   bool           `json:"required"`
	Provided   bool           `json:"provided"`
	ExpiryDate *time.Time     `json:"expiry_date,omitempty"`
	Status     DocumentStatus `json:"status"`
}

// CategoryStatus summarizes compliance within one document category.
type CategoryStatus struct {
	Status       OverallStatus      `json:"status"`
	Score        float64            `json:"score"`
	Requirements []RequirementCheck `json:"requirements"`
}

// ComplianceStatus is the derived compliance state of a supplier. It is
// recomputed on demand; every computation produces a fresh value.
type ComplianceStatus struct {
	Overall        OverallStatus             `json:"overall"`
	Score          float64                   `json:"score"`
	LastUpdated    time.Time                 `json:"last_updated"`
	Categories     map[string]CategoryStatus `json:"categories"`
	NextReviewDate *time.Time                `json:"next_review_date,omitempty"`
	TaxCompliant   bool                      `json:"tax_compliant"`
	BEECompliant   bool                      `json:"bee_compliant"`
	InsuranceValid bool                      `json:"insurance_valid"`
}

// ExpiryInfo describes one dated document's position in the expiration window.
type ExpiryInfo struct {
	Type            string       `json:"type"`
	ExpiryDate      time.Time    `json:"expiry_date"`
	DaysUntilExpiry int          `json:"days_until_expiry"`
	Status          ExpiryStatus `json:"status"`
}

// Violation is a concrete, severity-ranked compliance problem.
type Violation struct {
	Type              ViolationType     `json:"type"`
	Severity          ViolationSeverity `json:"severity"`
	Message           string            `json:"message"`
	DocumentType      string            `json:"document_type,omitempty"`
	RecommendedAction string            `json:"recommended_action"`
}
