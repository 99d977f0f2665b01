package compliance

import (
	"math"

	"vendorguard/internal/domain"
)

const (
	expiredPenalty  = 15.0
	expiringPenalty = 5.0

	// compliantScoreFloor is the minimum score for a compliant rating.
	compliantScoreFloor = 80.0

	// maxMissingBeforeNonCompliant: more missing required documents than this
	// forces a non-compliant rating regardless of score.
	maxMissingBeforeNonCompliant = 2
)

// Score computes the 0-100 compliance score: document completeness minus
// penalties for expired documents and documents expiring within 30 days.
// An empty requirement set counts as fully complete.
func Score(totalRequired, providedCount int, expirations []domain.ExpiryInfo) float64 {
	completeness := 100.0
	if totalRequired > 0 {
		completeness = float64(providedCount) / float64(totalRequired) * 100
	}

	penalty := float64(countExpired(expirations)) * expiredPenalty
	penalty += float64(len(expiringWithin(expirations, urgentWindowDays))) * expiringPenalty

	score := completeness - penalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return round2(score)
}

// DetermineOverallStatus derives the tri-state rating from the same facts the
// score is computed from. The score communicates degree, the status
// actionability: an expired document forces non-compliant even at score 85.
func DetermineOverallStatus(missingRequired []string, expirations []domain.ExpiryInfo, score float64) domain.OverallStatus {
	if countExpired(expirations) > 0 || len(missingRequired) > maxMissingBeforeNonCompliant {
		return domain.OverallStatusNonCompliant
	}
	if len(missingRequired) > 0 || len(expiringWithin(expirations, urgentWindowDays)) > 0 || score < compliantScoreFloor {
		return domain.OverallStatusPartial
	}
	return domain.OverallStatusCompliant
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
