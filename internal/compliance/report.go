package compliance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vendorguard/internal/domain"
	"vendorguard/internal/port"
)

// reportValidityDays is how long a generated report remains current.
const reportValidityDays = 30

// Generator produces per-supplier compliance reports. It is pure aside from
// the injected lookup and clock: identical documents and an identical "now"
// yield an identical report.
type Generator struct {
	lookup port.SupplierLookup
	now    func() time.Time
}

// NewGenerator creates a Generator. A nil now falls back to time.Now.
func NewGenerator(lookup port.SupplierLookup, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{lookup: lookup, now: now}
}

// Generate evaluates one supplier's documents into a ComplianceReport.
// Returns domain.ErrSupplierNotFound when the lookup cannot resolve the id.
func (g *Generator) Generate(ctx context.Context, supplierID uuid.UUID) (*domain.ComplianceReport, error) {
	record, err := g.lookup.Lookup(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("looking up supplier %s: %w", supplierID, err)
	}
	if record == nil {
		return nil, fmt.Errorf("lookup returned nil record for supplier %s: %w", supplierID, domain.ErrInvalidSupplierRecord)
	}
	return BuildReport(record, g.now().UTC()), nil
}

// BuildReport is the pure evaluation core shared by Generate and the
// aggregator: requirements, expirations, score, status, violations, and
// recommendations for one supplier at one instant.
func BuildReport(record *domain.SupplierRecord, now time.Time) *domain.ComplianceReport {
	validation := ValidateRequirements(record.BusinessType, record.Documents)
	expirations := ClassifyExpirations(record.Documents, now)

	totalRequired := len(RequiredDocuments(record.BusinessType))
	provided := providedRequiredCount(record.BusinessType, record.Documents)

	score := Score(totalRequired, provided, expirations)
	status := DetermineOverallStatus(validation.MissingRequired, expirations, score)
	advice := BuildRecommendations(validation.MissingRequired, expirations)

	return &domain.ComplianceReport{
		SupplierID:        record.ID,
		SupplierName:      record.CompanyName,
		BusinessType:      record.BusinessType,
		OverallStatus:     status,
		OverallScore:      score,
		TotalDocuments:    len(record.Documents),
		RequiredDocuments: totalRequired,
		ProvidedDocuments: provided,
		MissingDocuments:  validation.MissingRequired,
		ExpiringDocuments: expirations,
		CategoryStatuses:  buildCategoryStatuses(record, now),
		Violations:        DetectViolations(record.Documents, now),
		Errors:            validation.Errors,
		Recommendations:   advice.Recommendations,
		NextActions:       advice.NextActions,
		GeneratedAt:       now,
		ValidUntil:        now.AddDate(0, 0, reportValidityDays),
	}
}

// ComputeStatus derives the full ComplianceStatus value for a supplier,
// including category breakdowns and the tax/BEE/insurance flags.
func ComputeStatus(record *domain.SupplierRecord, now time.Time) domain.ComplianceStatus {
	report := BuildReport(record, now)

	status := domain.ComplianceStatus{
		Overall:        report.OverallStatus,
		Score:          report.OverallScore,
		LastUpdated:    now,
		Categories:     report.CategoryStatuses,
		TaxCompliant:   documentCurrent(record.Documents, "tax_certificate", now),
		BEECompliant:   documentCurrent(record.Documents, "bbbee_certificate", now),
		InsuranceValid: documentCurrent(record.Documents, "insurance_certificate", now),
	}

	// Next review falls on the most urgent upcoming expiry, if any.
	for _, info := range report.ExpiringDocuments {
		if info.DaysUntilExpiry >= 0 {
			d := info.ExpiryDate
			status.NextReviewDate = &d
			break
		}
	}
	return status
}

// documentCurrent reports whether a document of the given kind is present,
// not rejected, and not past its expiry date.
func documentCurrent(docs []domain.SupplierDocument, docType string, now time.Time) bool {
	for i := range docs {
		doc := &docs[i]
		if doc.Type != docType || doc.Status == domain.DocumentStatusRejected {
			continue
		}
		if doc.ExpiryDate != nil && daysUntil(*doc.ExpiryDate, now) < 0 {
			continue
		}
		return true
	}
	return false
}

// buildCategoryStatuses folds the requirement catalog into per-category
// checks: one RequirementCheck per catalog entry, grouped by category.
func buildCategoryStatuses(record *domain.SupplierRecord, now time.Time) map[string]domain.CategoryStatus {
	set := RequirementsFor(record.BusinessType)

	byType := make(map[string]*domain.SupplierDocument, len(record.Documents))
	for i := range record.Documents {
		doc := &record.Documents[i]
		if _, ok := byType[doc.Type]; !ok {
			byType[doc.Type] = doc
		}
	}

	type bucket struct {
		checks        []domain.RequirementCheck
		required      int
		satisfied     int
		expired       bool
		expiringSoon  bool
		missingNeeded bool
	}
	buckets := make(map[string]*bucket)

	appendCheck := func(docType string, required bool) {
		category := CategoryFor(docType)
		b := buckets[category]
		if b == nil {
			b = &bucket{}
			buckets[category] = b
		}

		check := domain.RequirementCheck{
			Type:     docType,
			Required: required,
			Status:   domain.DocumentStatusPending,
		}
		if doc, ok := byType[docType]; ok {
			check.Provided = true
			check.ExpiryDate = doc.ExpiryDate
			check.Status = effectiveStatus(doc, now)
		}

		if required {
			b.required++
			switch {
			case !check.Provided:
				b.missingNeeded = true
			case check.Status == domain.DocumentStatusExpired:
				b.expired = true
			default:
				b.satisfied++
				if check.Status == domain.DocumentStatusExpiring {
					b.expiringSoon = true
				}
			}
		}
		b.checks = append(b.checks, check)
	}

	for _, t := range set.Required {
		appendCheck(t, true)
	}
	for _, t := range set.Optional {
		appendCheck(t, false)
	}

	statuses := make(map[string]domain.CategoryStatus, len(buckets))
	for category, b := range buckets {
		score := 100.0
		if b.required > 0 {
			score = float64(b.satisfied) / float64(b.required) * 100
		}
		statuses[category] = domain.CategoryStatus{
			Status:       categoryOverall(b.required, b.satisfied, b.expired, b.expiringSoon, b.missingNeeded),
			Score:        round2(score),
			Requirements: b.checks,
		}
	}
	return statuses
}

func categoryOverall(required, satisfied int, expired, expiringSoon, missing bool) domain.OverallStatus {
	switch {
	case expired, required > 0 && satisfied == 0 && missing:
		return domain.OverallStatusNonCompliant
	case missing, expiringSoon:
		return domain.OverallStatusPartial
	default:
		return domain.OverallStatusCompliant
	}
}

// effectiveStatus overrides the stored document status with what its expiry
// date implies at evaluation time.
func effectiveStatus(doc *domain.SupplierDocument, now time.Time) domain.DocumentStatus {
	if doc.Status == domain.DocumentStatusRejected {
		return domain.DocumentStatusRejected
	}
	if doc.ExpiryDate != nil {
		days := daysUntil(*doc.ExpiryDate, now)
		switch {
		case days < 0:
			return domain.DocumentStatusExpired
		case days <= urgentWindowDays:
			return domain.DocumentStatusExpiring
		}
	}
	return doc.Status
}
