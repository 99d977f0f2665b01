package compliance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorguard/internal/compliance"
	"vendorguard/internal/domain"
)

func TestClassifyExpirationsSkipsUndatedDocuments(t *testing.T) {
	docs := []domain.SupplierDocument{
		doc("company_registration"),
		docExpiring("tax_certificate", 45),
	}

	infos := compliance.ClassifyExpirations(docs, frozenNow)

	require.Len(t, infos, 1)
	assert.Equal(t, "tax_certificate", infos[0].Type)
	assert.Equal(t, 45, infos[0].DaysUntilExpiry)
}

func TestClassifyExpirationsStatusThresholds(t *testing.T) {
	tests := []struct {
		name     string
		daysOut  int
		expected domain.ExpiryStatus
	}{
		{"expired last week", -7, domain.ExpiryStatusExpired},
		{"expires today", 0, domain.ExpiryStatusExpiring},
		{"expires tomorrow", 1, domain.ExpiryStatusExpiring},
		{"edge of the window", 90, domain.ExpiryStatusExpiring},
		{"just past the window", 91, domain.ExpiryStatusValid},
		{"expires next year", 365, domain.ExpiryStatusValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			infos := compliance.ClassifyExpirations(
				[]domain.SupplierDocument{docExpiring("tax_certificate", tt.daysOut)}, frozenNow)

			require.Len(t, infos, 1)
			assert.Equal(t, tt.daysOut, infos[0].DaysUntilExpiry)
			assert.Equal(t, tt.expected, infos[0].Status)
		})
	}
}

func TestClassifyExpirationsRoundsPartialDaysUp(t *testing.T) {
	d := doc("insurance_certificate")
	expiry := frozenNow.Add(36 * time.Hour)
	d.ExpiryDate = &expiry

	infos := compliance.ClassifyExpirations([]domain.SupplierDocument{d}, frozenNow)

	require.Len(t, infos, 1)
	assert.Equal(t, 2, infos[0].DaysUntilExpiry)
}

func TestClassifyExpirationsSortsMostUrgentFirst(t *testing.T) {
	docs := []domain.SupplierDocument{
		docExpiring("bbbee_certificate", 60),
		docExpiring("tax_certificate", -3),
		docExpiring("insurance_certificate", 10),
	}

	infos := compliance.ClassifyExpirations(docs, frozenNow)

	require.Len(t, infos, 3)
	assert.Equal(t, "tax_certificate", infos[0].Type)
	assert.Equal(t, "insurance_certificate", infos[1].Type)
	assert.Equal(t, "bbbee_certificate", infos[2].Type)
}
