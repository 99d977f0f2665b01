package compliance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorguard/internal/compliance"
	"vendorguard/internal/domain"
)

func TestValidateRequirementsNoDocuments(t *testing.T) {
	result := compliance.ValidateRequirements(domain.BusinessTypePtyLtd, nil)

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{
		"company_registration",
		"tax_certificate",
		"insurance_certificate",
		"bbbee_certificate",
	}, result.MissingRequired)
	assert.Empty(t, result.Errors)
}

func TestValidateRequirementsFullSet(t *testing.T) {
	result := compliance.ValidateRequirements(domain.BusinessTypePtyLtd, fullPtyLtdDocs())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.MissingRequired)
	assert.Equal(t, []string{
		"vat_certificate",
		"bank_confirmation",
		"letter_of_good_standing",
	}, result.MissingOptional)
	assert.Empty(t, result.Errors)
}

func TestValidateRequirementsDuplicateReportedOnce(t *testing.T) {
	docs := append(fullPtyLtdDocs(),
		docExpiring("tax_certificate", 200),
		docExpiring("tax_certificate", 100),
	)

	result := compliance.ValidateRequirements(domain.BusinessTypePtyLtd, docs)

	assert.False(t, result.IsValid)
	assert.Empty(t, result.MissingRequired)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Multiple tax_certificate documents provided", result.Errors[0])
}

func TestValidateRequirementsUnrecognizedType(t *testing.T) {
	docs := append(fullPtyLtdDocs(), doc("mining_permit"))

	result := compliance.ValidateRequirements(domain.BusinessTypePtyLtd, docs)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `Unrecognized document type "mining_permit"`)
	assert.Contains(t, result.Errors[0], "pty_ltd")
}

func TestValidateRequirementsStructuralErrors(t *testing.T) {
	bad := doc("company_registration")
	expiry := bad.IssueDate.AddDate(0, -6, 0)
	bad.ExpiryDate = &expiry
	bad.FileSize = -1

	result := compliance.ValidateRequirements(domain.BusinessTypePtyLtd, []domain.SupplierDocument{bad})

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "Document company_registration expires before its issue date", result.Errors[0])
	assert.Equal(t, "Document company_registration has a negative file size", result.Errors[1])
}

func TestValidateRequirementsMissingOrderFollowsCatalog(t *testing.T) {
	// Only the middle requirement is present; the rest come back in
	// catalog order, not input order.
	docs := []domain.SupplierDocument{docExpiring("insurance_certificate", 365)}

	result := compliance.ValidateRequirements(domain.BusinessTypePtyLtd, docs)

	assert.Equal(t, []string{
		"company_registration",
		"tax_certificate",
		"bbbee_certificate",
	}, result.MissingRequired)
}
