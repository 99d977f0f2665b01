package compliance

import (
	"fmt"

	"vendorguard/internal/domain"
)

// maxNextActions caps the prioritized action list so it stays actionable.
const maxNextActions = 5

// Advice pairs the full recommendation list with the prioritized next actions.
type Advice struct {
	Recommendations []string
	NextActions     []string
}

// BuildRecommendations produces one recommendation per missing required
// document, per expired document, and per document expiring within 30 days.
// NextActions is the same material reordered by urgency (expired, then
// missing, then expiring) and capped at maxNextActions.
func BuildRecommendations(missingRequired []string, expirations []domain.ExpiryInfo) Advice {
	var expired, expiring []string
	for _, info := range expirations {
		switch {
		case info.Status == domain.ExpiryStatusExpired:
			expired = append(expired, fmt.Sprintf("Renew %s immediately", info.Type))
		case info.DaysUntilExpiry <= urgentWindowDays:
			expiring = append(expiring, fmt.Sprintf("Schedule renewal for %s", info.Type))
		}
	}

	missing := make([]string, 0, len(missingRequired))
	for _, t := range missingRequired {
		missing = append(missing, fmt.Sprintf("Submit %s to proceed", t))
	}

	recommendations := make([]string, 0, len(missing)+len(expired)+len(expiring))
	recommendations = append(recommendations, missing...)
	recommendations = append(recommendations, expired...)
	recommendations = append(recommendations, expiring...)

	actions := make([]string, 0, maxNextActions)
	for _, group := range [][]string{expired, missing, expiring} {
		for _, a := range group {
			if len(actions) == maxNextActions {
				return Advice{Recommendations: recommendations, NextActions: actions}
			}
			actions = append(actions, a)
		}
	}
	return Advice{Recommendations: recommendations, NextActions: actions}
}
