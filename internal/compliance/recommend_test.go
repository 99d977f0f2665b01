package compliance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vendorguard/internal/compliance"
)

func TestBuildRecommendationsEmpty(t *testing.T) {
	advice := compliance.BuildRecommendations(nil, nil)

	assert.Empty(t, advice.Recommendations)
	assert.Empty(t, advice.NextActions)
}

func TestBuildRecommendationsMessagesAndOrder(t *testing.T) {
	missing := []string{"company_registration", "bbbee_certificate"}
	exps := expirations(-3, 20)

	advice := compliance.BuildRecommendations(missing, exps)

	// Recommendations group missing, then expired, then expiring.
	assert.Equal(t, []string{
		"Submit company_registration to proceed",
		"Submit bbbee_certificate to proceed",
		"Renew company_registration immediately",
		"Schedule renewal for tax_certificate",
	}, advice.Recommendations)

	// Next actions reorder by urgency: expired, then missing, then expiring.
	assert.Equal(t, []string{
		"Renew company_registration immediately",
		"Submit company_registration to proceed",
		"Submit bbbee_certificate to proceed",
		"Schedule renewal for tax_certificate",
	}, advice.NextActions)
}

func TestBuildRecommendationsNextActionsCapped(t *testing.T) {
	missing := []string{"a", "b", "c", "d"}
	exps := expirations(-1, -2, -3)

	advice := compliance.BuildRecommendations(missing, exps)

	assert.Len(t, advice.Recommendations, 7)
	assert.Len(t, advice.NextActions, 5)
	// All three renewals outrank the submissions; only two submissions fit.
	for _, action := range advice.NextActions[:3] {
		assert.Contains(t, action, "Renew")
	}
	for _, action := range advice.NextActions[3:] {
		assert.Contains(t, action, "Submit")
	}
}

func TestBuildRecommendationsBeyondWindowIgnored(t *testing.T) {
	advice := compliance.BuildRecommendations(nil, expirations(45))

	assert.Empty(t, advice.Recommendations)
	assert.Empty(t, advice.NextActions)
}
