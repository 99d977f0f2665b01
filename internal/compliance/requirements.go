package compliance

import (
	"fmt"

	"vendorguard/internal/domain"
)

// ValidationResult is the outcome of checking a document set against a
// business type's requirement catalog. Errors are advisory data-quality
// findings; they never feed the score or overall status.
type ValidationResult struct {
	IsValid         bool
	MissingRequired []string
	MissingOptional []string
	Errors          []string
}

// ValidateRequirements computes which catalog requirements a document set
// satisfies, plus structural problems: duplicate submissions, document kinds
// the catalog does not recognize for this business type, and malformed
// records (expiry before issue, negative file size).
func ValidateRequirements(bt domain.BusinessType, docs []domain.SupplierDocument) ValidationResult {
	set := RequirementsFor(bt)

	recognized := make(map[string]bool, len(set.Required)+len(set.Optional))
	for _, t := range set.Required {
		recognized[t] = true
	}
	for _, t := range set.Optional {
		recognized[t] = true
	}

	counts := make(map[string]int, len(docs))
	var errs []string
	for i := range docs {
		doc := &docs[i]
		counts[doc.Type]++
		if !recognized[doc.Type] {
			errs = append(errs, fmt.Sprintf("Unrecognized document type %q for business type %s", doc.Type, bt))
		}
		if doc.ExpiryDate != nil && doc.ExpiryDate.Before(doc.IssueDate) {
			errs = append(errs, fmt.Sprintf("Document %s expires before its issue date", doc.Type))
		}
		if doc.FileSize < 0 {
			errs = append(errs, fmt.Sprintf("Document %s has a negative file size", doc.Type))
		}
	}

	// Duplicate errors in first-seen order over the catalog plus input order
	// for unrecognized kinds, keeping output deterministic.
	seen := make(map[string]bool, len(counts))
	for i := range docs {
		t := docs[i].Type
		if counts[t] > 1 && !seen[t] {
			seen[t] = true
			errs = append(errs, fmt.Sprintf("Multiple %s documents provided", t))
		}
	}

	var missingRequired []string
	for _, t := range set.Required {
		if counts[t] == 0 {
			missingRequired = append(missingRequired, t)
		}
	}
	var missingOptional []string
	for _, t := range set.Optional {
		if counts[t] == 0 {
			missingOptional = append(missingOptional, t)
		}
	}

	return ValidationResult{
		IsValid:         len(missingRequired) == 0 && len(errs) == 0,
		MissingRequired: missingRequired,
		MissingOptional: missingOptional,
		Errors:          errs,
	}
}

// providedRequiredCount returns how many distinct required document kinds the
// set provides for the business type.
func providedRequiredCount(bt domain.BusinessType, docs []domain.SupplierDocument) int {
	present := make(map[string]bool, len(docs))
	for i := range docs {
		present[docs[i].Type] = true
	}
	n := 0
	for _, t := range RequiredDocuments(bt) {
		if present[t] {
			n++
		}
	}
	return n
}
