package compliance

import (
	"math"
	"sort"
	"time"

	"vendorguard/internal/domain"
)

const (
	// expiringWindowDays is the lookahead used to flag documents as expiring.
	expiringWindowDays = 90
	// urgentWindowDays is the window that triggers penalties and renewals.
	urgentWindowDays = 30
)

// ClassifyExpirations evaluates every dated document against the expiration
// window and returns the results sorted most-urgent first. Documents without
// an expiry date carry no expiration signal and are excluded.
func ClassifyExpirations(docs []domain.SupplierDocument, now time.Time) []domain.ExpiryInfo {
	infos := make([]domain.ExpiryInfo, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		if doc.ExpiryDate == nil {
			continue
		}
		days := daysUntil(*doc.ExpiryDate, now)
		infos = append(infos, domain.ExpiryInfo{
			Type:            doc.Type,
			ExpiryDate:      *doc.ExpiryDate,
			DaysUntilExpiry: days,
			Status:          expiryStatus(days),
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].DaysUntilExpiry < infos[j].DaysUntilExpiry
	})
	return infos
}

// daysUntil returns ceil((expiry - now) / 24h): a document expiring within
// the next 24 hours counts as 1 day out, one that lapsed a day ago as -1.
func daysUntil(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

func expiryStatus(days int) domain.ExpiryStatus {
	switch {
	case days < 0:
		return domain.ExpiryStatusExpired
	case days <= expiringWindowDays:
		return domain.ExpiryStatusExpiring
	default:
		return domain.ExpiryStatusValid
	}
}

// countExpired returns how many classified documents are already expired.
func countExpired(infos []domain.ExpiryInfo) int {
	n := 0
	for _, info := range infos {
		if info.Status == domain.ExpiryStatusExpired {
			n++
		}
	}
	return n
}

// expiringWithin returns entries expiring in [0, days], excluding expired ones.
func expiringWithin(infos []domain.ExpiryInfo, days int) []domain.ExpiryInfo {
	var out []domain.ExpiryInfo
	for _, info := range infos {
		if info.DaysUntilExpiry >= 0 && info.DaysUntilExpiry <= days {
			out = append(out, info)
		}
	}
	return out
}
