package domain

import (
	"time"

	"github.com/google/uuid"
)

// ComplianceReport is the per-supplier compliance evaluation. Reports are
// created fresh on each request and never persisted by the engine.
type ComplianceReport struct {
	SupplierID        uuid.UUID                 `json:"supplier_id"`
	SupplierName      string                    `json:"supplier_name"`
	BusinessType      BusinessType              `json:"business_type"`
	OverallStatus     OverallStatus             `json:"overall_status"`
	OverallScore      float64                   `json:"overall_score"`
	TotalDocuments    int                       `json:"total_documents"`
	RequiredDocuments int                       `json:"required_documents"`
	ProvidedDocuments int                       `json:"provided_documents"`
	MissingDocuments  []string                  `json:"missing_documents"`
	ExpiringDocuments []ExpiryInfo              `json:"expiring_documents"`
	CategoryStatuses  map[string]CategoryStatus `json:"category_statuses"`
	Violations        []Violation               `json:"violations"`
	Errors            []string                  `json:"errors,omitempty"`
	Recommendations   []string                  `json:"recommendations"`
	NextActions       []string                  `json:"next_actions"`
	GeneratedAt       time.Time                 `json:"generated_at"`
	ValidUntil        time.Time                 `json:"valid_until"`
}

// ComplianceBreakdown counts suppliers per overall status. The three counts
// always sum to the number of successfully evaluated suppliers.
type ComplianceBreakdown struct {
	Compliant    int `json:"compliant"`
	Partial      int `json:"partial"`
	NonCompliant int `json:"non_compliant"`
}

// TopIssue is one entry in the fleet-wide issue ranking.
type TopIssue struct {
	Issue             string            `json:"issue"`
	AffectedSuppliers int               `json:"affected_suppliers"`
	Severity          ViolationSeverity `json:"severity"`
}

// ExpirationAlerts buckets document expirations across the fleet.
// ExpiringSoon covers 0-30 days out, ExpiringNextMonth 31-60.
type ExpirationAlerts struct {
	ExpiredDocuments  int `json:"expired_documents"`
	ExpiringSoon      int `json:"expiring_soon"`
	ExpiringNextMonth int `json:"expiring_next_month"`
}

// BusinessTypeStats aggregates compliance per business type.
type BusinessTypeStats struct {
	Total        int     `json:"total"`
	Compliant    int     `json:"compliant"`
	AverageScore float64 `json:"average_score"`
}

// ReportPeriod is the window a summary report covers.
type ReportPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SupplierFailure records a supplier that could not be evaluated during
// aggregation. Failures are reported alongside the summary, never silently
// dropped.
type SupplierFailure struct {
	SupplierID uuid.UUID `json:"supplier_id"`
	Reason     string    `json:"reason"`
}

// ComplianceSummaryReport is the fleet-wide aggregate over many suppliers.
type ComplianceSummaryReport struct {
	TotalSuppliers         int                                `json:"total_suppliers"`
	ComplianceBreakdown    ComplianceBreakdown                `json:"compliance_breakdown"`
	AverageComplianceScore float64                            `json:"average_compliance_score"`
	TopIssues              []TopIssue                         `json:"top_issues"`
	ExpirationAlerts       ExpirationAlerts                   `json:"expiration_alerts"`
	BusinessTypeBreakdown  map[BusinessType]BusinessTypeStats `json:"business_type_breakdown"`
	ReportPeriod           ReportPeriod                       `json:"report_period"`
	GeneratedAt            time.Time                          `json:"generated_at"`
	Failures               []SupplierFailure                  `json:"failures,omitempty"`
}
