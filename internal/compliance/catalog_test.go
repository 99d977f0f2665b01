package compliance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vendorguard/internal/compliance"
	"vendorguard/internal/domain"
)

func TestRequiredDocumentsPtyLtd(t *testing.T) {
	required := compliance.RequiredDocuments(domain.BusinessTypePtyLtd)

	assert.Equal(t, []string{
		"company_registration",
		"tax_certificate",
		"insurance_certificate",
		"bbbee_certificate",
	}, required)
}

func TestRequirementsForUnknownTypeFallsBackToCorporation(t *testing.T) {
	unknown := compliance.RequirementsFor(domain.BusinessType("co_op"))
	corporation := compliance.RequirementsFor(domain.BusinessTypeCorporation)

	assert.Equal(t, corporation, unknown)
}

func TestRequirementsForEveryKnownType(t *testing.T) {
	types := []domain.BusinessType{
		domain.BusinessTypePtyLtd,
		domain.BusinessTypeCorporation,
		domain.BusinessTypeSoleProprietorship,
		domain.BusinessTypePartnership,
		domain.BusinessTypeCloseCorporation,
	}

	for _, bt := range types {
		set := compliance.RequirementsFor(bt)
		assert.NotEmpty(t, set.Required, "business type %s has no required documents", bt)
		assert.Contains(t, set.Required, "tax_certificate", "business type %s", bt)
		assert.Contains(t, set.Required, "insurance_certificate", "business type %s", bt)
	}
}

func TestIsCriticalDocument(t *testing.T) {
	assert.True(t, compliance.IsCriticalDocument("company_registration"))
	assert.True(t, compliance.IsCriticalDocument("tax_certificate"))
	assert.True(t, compliance.IsCriticalDocument("insurance_certificate"))
	assert.False(t, compliance.IsCriticalDocument("bbbee_certificate"))
	assert.False(t, compliance.IsCriticalDocument("vat_certificate"))
}

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, "legal", compliance.CategoryFor("company_registration"))
	assert.Equal(t, "tax", compliance.CategoryFor("vat_certificate"))
	assert.Equal(t, "insurance", compliance.CategoryFor("insurance_certificate"))
	assert.Equal(t, "empowerment", compliance.CategoryFor("bbbee_certificate"))
	assert.Equal(t, "financial", compliance.CategoryFor("bank_confirmation"))
	assert.Equal(t, "general", compliance.CategoryFor("mystery_attachment"))
}
