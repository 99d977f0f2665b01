package compliance

import "vendorguard/internal/domain"

// RequirementSet lists the document kinds a business type must and may submit.
type RequirementSet struct {
	Required []string
	Optional []string
}

// catalog maps each business type to its requirement set. Slices are ordered
// by submission priority; that order is preserved in missing-document lists.
var catalog = map[domain.BusinessType]RequirementSet{
	domain.BusinessTypePtyLtd: {
		Required: []string{"company_registration", "tax_certificate", "insurance_certificate", "bbbee_certificate"},
		Optional: []string{"vat_certificate", "bank_confirmation", "letter_of_good_standing"},
	},
	domain.BusinessTypeCorporation: {
		Required: []string{"company_registration", "tax_certificate", "insurance_certificate", "bbbee_certificate"},
		Optional: []string{"vat_certificate", "bank_confirmation"},
	},
	domain.BusinessTypeSoleProprietorship: {
		Required: []string{"id_document", "tax_certificate", "insurance_certificate"},
		Optional: []string{"vat_certificate", "bank_confirmation"},
	},
	domain.BusinessTypePartnership: {
		Required: []string{"partnership_agreement", "tax_certificate", "insurance_certificate"},
		Optional: []string{"vat_certificate", "bbbee_certificate"},
	},
	domain.BusinessTypeCloseCorporation: {
		Required: []string{"company_registration", "tax_certificate", "insurance_certificate"},
		Optional: []string{"bbbee_certificate", "vat_certificate"},
	},
}

// criticalDocuments are escalated to high severity in fleet issue rankings at
// a lower affected-supplier threshold.
var criticalDocuments = map[string]bool{
	"company_registration":  true,
	"tax_certificate":       true,
	"insurance_certificate": true,
}

// documentCategories groups document kinds for category-level statuses.
// Kinds not listed here fall into the "general" category.
var documentCategories = map[string]string{
	"company_registration":    "legal",
	"partnership_agreement":   "legal",
	"id_document":             "legal",
	"letter_of_good_standing": "legal",
	"tax_certificate":         "tax",
	"vat_certificate":         "tax",
	"insurance_certificate":   "insurance",
	"bbbee_certificate":       "empowerment",
	"bank_confirmation":       "financial",
}

// RequirementsFor returns the requirement set for a business type. Unknown
// types fall back to the corporation set; the lookup is total over all
// string inputs and never errors.
func RequirementsFor(bt domain.BusinessType) RequirementSet {
	if set, ok := catalog[bt]; ok {
		return set
	}
	return catalog[domain.BusinessTypeCorporation]
}

// RequiredDocuments returns the required document kinds for a business type.
func RequiredDocuments(bt domain.BusinessType) []string {
	return RequirementsFor(bt).Required
}

// OptionalDocuments returns the optional document kinds for a business type.
func OptionalDocuments(bt domain.BusinessType) []string {
	return RequirementsFor(bt).Optional
}

// IsCriticalDocument reports whether a document kind is compliance-critical.
func IsCriticalDocument(docType string) bool {
	return criticalDocuments[docType]
}

// CategoryFor returns the reporting category of a document kind.
func CategoryFor(docType string) string {
	if c, ok := documentCategories[docType]; ok {
		return c
	}
	return "general"
}
