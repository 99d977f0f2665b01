package compliance

import (
	"fmt"
	"sort"
	"time"

	"vendorguard/internal/domain"
)

// DetectViolations scans a document set for concrete problems: lapsed or
// soon-to-lapse documents, rejected documents or verifications, and duplicate
// submissions. The result is sorted by descending severity; ties keep input
// order so report rendering stays deterministic.
func DetectViolations(docs []domain.SupplierDocument, now time.Time) []domain.Violation {
	var violations []domain.Violation
	counts := make(map[string]int, len(docs))

	for i := range docs {
		doc := &docs[i]
		counts[doc.Type]++
		if counts[doc.Type] == 2 {
			violations = append(violations, domain.Violation{
				Type:              domain.ViolationTypeDuplicate,
				Severity:          domain.SeverityLow,
				Message:           fmt.Sprintf("Multiple %s documents provided", doc.Type),
				DocumentType:      doc.Type,
				RecommendedAction: fmt.Sprintf("Remove duplicate %s submissions", doc.Type),
			})
		}

		if doc.ExpiryDate != nil {
			days := daysUntil(*doc.ExpiryDate, now)
			switch {
			case days < 0:
				violations = append(violations, domain.Violation{
					Type:              domain.ViolationTypeExpired,
					Severity:          domain.SeverityHigh,
					Message:           fmt.Sprintf("%s expired %d days ago", doc.Type, -days),
					DocumentType:      doc.Type,
					RecommendedAction: fmt.Sprintf("Renew %s immediately", doc.Type),
				})
			case days <= urgentWindowDays:
				violations = append(violations, domain.Violation{
					Type:              domain.ViolationTypeExpired,
					Severity:          domain.SeverityMedium,
					Message:           fmt.Sprintf("%s expires in %d days", doc.Type, days),
					DocumentType:      doc.Type,
					RecommendedAction: fmt.Sprintf("Schedule renewal for %s", doc.Type),
				})
			}
		}

		if doc.Status == domain.DocumentStatusRejected {
			violations = append(violations, domain.Violation{
				Type:              domain.ViolationTypeInvalid,
				Severity:          domain.SeverityHigh,
				Message:           fmt.Sprintf("%s was rejected", doc.Type),
				DocumentType:      doc.Type,
				RecommendedAction: fmt.Sprintf("Resubmit a valid %s", doc.Type),
			})
		} else if doc.VerificationStatus == domain.VerificationStatusRejected {
			violations = append(violations, domain.Violation{
				Type:              domain.ViolationTypeInvalid,
				Severity:          domain.SeverityMedium,
				Message:           fmt.Sprintf("%s failed verification", doc.Type),
				DocumentType:      doc.Type,
				RecommendedAction: fmt.Sprintf("Review and resubmit %s", doc.Type),
			})
		}
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Severity.Rank() > violations[j].Severity.Rank()
	})
	return violations
}
