package compliance

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"vendorguard/internal/domain"
	"vendorguard/internal/port"
)

const (
	// defaultConcurrency bounds parallel lookups so the upstream document
	// store is not flooded during fleet aggregation.
	defaultConcurrency = 8

	// summaryPeriodDays is the trailing window a summary report covers.
	summaryPeriodDays = 30

	// topIssueLimit caps the fleet issue ranking.
	topIssueLimit = 10

	// Affected-supplier percentage thresholds for issue severity. Critical
	// documents escalate to high at the lower threshold.
	highIssueThreshold   = 40.0
	mediumIssueThreshold = 20.0
)

// Aggregator folds per-supplier compliance evaluations into a fleet summary.
// Suppliers are fetched concurrently under a bounded worker pool; the fold is
// commutative, so completion order never affects the result.
type Aggregator struct {
	lookup      port.SupplierLookup
	now         func() time.Time
	concurrency int
}

// NewAggregator creates an Aggregator. A nil now falls back to time.Now and a
// non-positive concurrency to defaultConcurrency.
func NewAggregator(lookup port.SupplierLookup, now func() time.Time, concurrency int) *Aggregator {
	if now == nil {
		now = time.Now
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Aggregator{lookup: lookup, now: now, concurrency: concurrency}
}

// Aggregate evaluates every supplier id and builds a ComplianceSummaryReport.
// A supplier that fails to resolve is recorded on the summary's failure list
// and skipped before the fold, never aborting the batch. On cancellation the
// reports already computed are still folded; undispatched suppliers are
// recorded as failures with the context error.
func (a *Aggregator) Aggregate(ctx context.Context, supplierIDs []uuid.UUID) (*domain.ComplianceSummaryReport, error) {
	now := a.now().UTC()

	var (
		mu       sync.Mutex
		reports  []*domain.ComplianceReport
		failures []domain.SupplierFailure
		wg       sync.WaitGroup
	)
	sem := make(chan struct{}, a.concurrency)

	for _, id := range supplierIDs {
		if err := ctx.Err(); err != nil {
			mu.Lock()
			failures = append(failures, domain.SupplierFailure{SupplierID: id, Reason: err.Error()})
			mu.Unlock()
			continue
		}

		sem <- struct{}{} // acquire
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			defer func() { <-sem }() // release

			record, err := a.lookup.Lookup(ctx, id)
			if err != nil {
				mu.Lock()
				failures = append(failures, domain.SupplierFailure{SupplierID: id, Reason: err.Error()})
				mu.Unlock()
				return
			}
			if record == nil {
				mu.Lock()
				failures = append(failures, domain.SupplierFailure{SupplierID: id, Reason: domain.ErrInvalidSupplierRecord.Error()})
				mu.Unlock()
				return
			}

			report := BuildReport(record, now)
			mu.Lock()
			reports = append(reports, report)
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	if len(failures) > 0 {
		log.Printf("compliance.Aggregator: %d of %d suppliers skipped during aggregation", len(failures), len(supplierIDs))
	}

	// Deterministic failure ordering regardless of completion order.
	sort.Slice(failures, func(i, j int) bool {
		return failures[i].SupplierID.String() < failures[j].SupplierID.String()
	})

	summary := foldReports(reports, now)
	summary.Failures = failures
	return summary, nil
}

// foldReports combines per-supplier reports into the summary. Every
// accumulator is commutative over the report set.
func foldReports(reports []*domain.ComplianceReport, now time.Time) *domain.ComplianceSummaryReport {
	summary := &domain.ComplianceSummaryReport{
		TotalSuppliers:        len(reports),
		BusinessTypeBreakdown: make(map[domain.BusinessType]domain.BusinessTypeStats),
		ReportPeriod: domain.ReportPeriod{
			Start: now.AddDate(0, 0, -summaryPeriodDays),
			End:   now,
		},
		GeneratedAt: now,
	}

	issueCounts := make(map[string]int)
	scoreSums := make(map[domain.BusinessType]float64)
	var totalScore float64

	for _, report := range reports {
		totalScore += report.OverallScore

		switch report.OverallStatus {
		case domain.OverallStatusCompliant:
			summary.ComplianceBreakdown.Compliant++
		case domain.OverallStatusPartial:
			summary.ComplianceBreakdown.Partial++
		case domain.OverallStatusNonCompliant:
			summary.ComplianceBreakdown.NonCompliant++
		}

		stats := summary.BusinessTypeBreakdown[report.BusinessType]
		stats.Total++
		if report.OverallStatus == domain.OverallStatusCompliant {
			stats.Compliant++
		}
		summary.BusinessTypeBreakdown[report.BusinessType] = stats
		scoreSums[report.BusinessType] += report.OverallScore

		for _, missing := range report.MissingDocuments {
			issueCounts[missing]++
		}

		for _, info := range report.ExpiringDocuments {
			switch {
			case info.Status == domain.ExpiryStatusExpired:
				summary.ExpirationAlerts.ExpiredDocuments++
			case info.DaysUntilExpiry <= urgentWindowDays:
				summary.ExpirationAlerts.ExpiringSoon++
			case info.DaysUntilExpiry <= 2*urgentWindowDays:
				summary.ExpirationAlerts.ExpiringNextMonth++
			}
		}
	}

	if len(reports) > 0 {
		summary.AverageComplianceScore = round2(totalScore / float64(len(reports)))
	}
	for bt, stats := range summary.BusinessTypeBreakdown {
		stats.AverageScore = round2(scoreSums[bt] / float64(stats.Total))
		summary.BusinessTypeBreakdown[bt] = stats
	}

	summary.TopIssues = rankIssues(issueCounts, len(reports))
	return summary
}

// rankIssues orders missing-document issues by affected-supplier count,
// breaking ties lexicographically so the ranking is order-independent.
func rankIssues(counts map[string]int, totalSuppliers int) []domain.TopIssue {
	issues := make([]domain.TopIssue, 0, len(counts))
	for docType, affected := range counts {
		issues = append(issues, domain.TopIssue{
			Issue:             docType,
			AffectedSuppliers: affected,
			Severity:          issueSeverity(docType, affected, totalSuppliers),
		})
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].AffectedSuppliers != issues[j].AffectedSuppliers {
			return issues[i].AffectedSuppliers > issues[j].AffectedSuppliers
		}
		return issues[i].Issue < issues[j].Issue
	})

	if len(issues) > topIssueLimit {
		issues = issues[:topIssueLimit]
	}
	return issues
}

func issueSeverity(docType string, affected, totalSuppliers int) domain.ViolationSeverity {
	if totalSuppliers == 0 {
		return domain.SeverityLow
	}
	pct := float64(affected) / float64(totalSuppliers) * 100

	if IsCriticalDocument(docType) && pct > mediumIssueThreshold {
		return domain.SeverityHigh
	}
	switch {
	case pct > highIssueThreshold:
		return domain.SeverityHigh
	case pct > mediumIssueThreshold:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
