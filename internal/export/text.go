package export

import (
	"fmt"
	"sort"
	"strings"

	"vendorguard/internal/domain"
)

// Executive risk thresholds: share of non-compliant suppliers in the fleet.
const (
	highRiskThreshold   = 30.0
	mediumRiskThreshold = 15.0
)

// ReportText renders a human-readable compliance report.
func ReportText(report *domain.ComplianceReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Compliance Report: %s\n", report.SupplierName)
	fmt.Fprintf(&sb, "Business type: %s\n", report.BusinessType)
	fmt.Fprintf(&sb, "Status: %s (score %.2f/100)\n", report.OverallStatus, report.OverallScore)
	fmt.Fprintf(&sb, "Documents: %d provided of %d required (%d total on file)\n",
		report.ProvidedDocuments, report.RequiredDocuments, report.TotalDocuments)

	if len(report.MissingDocuments) > 0 {
		fmt.Fprintf(&sb, "Missing: %s\n", strings.Join(report.MissingDocuments, ", "))
	}
	for _, info := range report.ExpiringDocuments {
		if info.Status == domain.ExpiryStatusExpired {
			fmt.Fprintf(&sb, "Expired: %s (%d days overdue)\n", info.Type, -info.DaysUntilExpiry)
		} else if info.Status == domain.ExpiryStatusExpiring {
			fmt.Fprintf(&sb, "Expiring: %s in %d days\n", info.Type, info.DaysUntilExpiry)
		}
	}
	for _, v := range report.Violations {
		fmt.Fprintf(&sb, "Violation [%s]: %s\n", v.Severity, v.Message)
	}
	if len(report.NextActions) > 0 {
		sb.WriteString("Next actions:\n")
		for i, action := range report.NextActions {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, action)
		}
	}
	fmt.Fprintf(&sb, "Generated %s, valid until %s\n",
		report.GeneratedAt.Format("2006-01-02"), report.ValidUntil.Format("2006-01-02"))
	return sb.String()
}

// SummaryText renders a human-readable fleet summary.
func SummaryText(summary *domain.ComplianceSummaryReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Fleet Compliance Summary (%s to %s)\n",
		summary.ReportPeriod.Start.Format("2006-01-02"), summary.ReportPeriod.End.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Suppliers evaluated: %d\n", summary.TotalSuppliers)
	fmt.Fprintf(&sb, "Compliant: %d, Partial: %d, Non-compliant: %d\n",
		summary.ComplianceBreakdown.Compliant, summary.ComplianceBreakdown.Partial,
		summary.ComplianceBreakdown.NonCompliant)
	fmt.Fprintf(&sb, "Average score: %.2f\n", summary.AverageComplianceScore)
	fmt.Fprintf(&sb, "Expirations: %d expired, %d within 30 days, %d within 60 days\n",
		summary.ExpirationAlerts.ExpiredDocuments, summary.ExpirationAlerts.ExpiringSoon,
		summary.ExpirationAlerts.ExpiringNextMonth)

	if len(summary.TopIssues) > 0 {
		sb.WriteString("Top issues:\n")
		for i, issue := range summary.TopIssues {
			fmt.Fprintf(&sb, "  %d. %s - %d suppliers [%s]\n",
				i+1, issue.Issue, issue.AffectedSuppliers, issue.Severity)
		}
	}

	for _, bt := range sortedBusinessTypes(summary.BusinessTypeBreakdown) {
		stats := summary.BusinessTypeBreakdown[bt]
		fmt.Fprintf(&sb, "%s: %d suppliers, %d compliant, avg score %.2f\n",
			bt, stats.Total, stats.Compliant, stats.AverageScore)
	}

	if len(summary.Failures) > 0 {
		fmt.Fprintf(&sb, "Skipped suppliers: %d\n", len(summary.Failures))
	}
	return sb.String()
}

// ExecutiveSummary renders a short narrative with a derived risk level.
// At-risk means non-compliant: more than 30% of the fleet non-compliant is
// HIGH risk, more than 15% MEDIUM, anything else LOW.
func ExecutiveSummary(summary *domain.ComplianceSummaryReport) string {
	risk := "LOW"
	atRiskPct := 0.0
	if summary.TotalSuppliers > 0 {
		atRiskPct = float64(summary.ComplianceBreakdown.NonCompliant) / float64(summary.TotalSuppliers) * 100
	}
	switch {
	case atRiskPct > highRiskThreshold:
		risk = "HIGH"
	case atRiskPct > mediumRiskThreshold:
		risk = "MEDIUM"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Risk level: %s. ", risk)
	fmt.Fprintf(&sb, "Of %d suppliers evaluated, %d are fully compliant, %d have open gaps, and %d are non-compliant (%.1f%% of the fleet at risk). ",
		summary.TotalSuppliers, summary.ComplianceBreakdown.Compliant,
		summary.ComplianceBreakdown.Partial, summary.ComplianceBreakdown.NonCompliant, atRiskPct)
	fmt.Fprintf(&sb, "The average compliance score is %.2f.", summary.AverageComplianceScore)

	if len(summary.TopIssues) > 0 {
		top := summary.TopIssues[0]
		fmt.Fprintf(&sb, " The most widespread gap is a missing %s, affecting %d suppliers.",
			top.Issue, top.AffectedSuppliers)
	}
	if summary.ExpirationAlerts.ExpiredDocuments > 0 {
		fmt.Fprintf(&sb, " %d documents have already expired and need immediate renewal.",
			summary.ExpirationAlerts.ExpiredDocuments)
	}
	return sb.String()
}

func sortedBusinessTypes(m map[domain.BusinessType]domain.BusinessTypeStats) []domain.BusinessType {
	types := make([]domain.BusinessType, 0, len(m))
	for bt := range m {
		types = append(types, bt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
