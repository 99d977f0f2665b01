package export

import (
	"fmt"
	"strconv"
	"time"

	"vendorguard/internal/domain"
)

// KPI is a single headline figure for dashboard rendering.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChartPoint is one labeled value in a chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Alert is a dashboard banner entry.
type Alert struct {
	Severity domain.ViolationSeverity `json:"severity"`
	Message  string                   `json:"message"`
}

// DashboardPayload is a UI-ready projection of a fleet summary: KPI tiles,
// pie/series data, and an alert list. It contains no rendering logic.
type DashboardPayload struct {
	KPIs               []KPI        `json:"kpis"`
	StatusBreakdown    []ChartPoint `json:"status_breakdown"`
	BusinessTypeScores []ChartPoint `json:"business_type_scores"`
	Alerts             []Alert      `json:"alerts"`
	GeneratedAt        time.Time    `json:"generated_at"`
}

// Dashboard projects a summary into chart-ready data.
func Dashboard(summary *domain.ComplianceSummaryReport) DashboardPayload {
	payload := DashboardPayload{
		KPIs: []KPI{
			{Label: "Suppliers", Value: strconv.Itoa(summary.TotalSuppliers)},
			{Label: "Average Score", Value: formatScore(summary.AverageComplianceScore)},
			{Label: "Compliant", Value: strconv.Itoa(summary.ComplianceBreakdown.Compliant)},
			{Label: "Non-Compliant", Value: strconv.Itoa(summary.ComplianceBreakdown.NonCompliant)},
			{Label: "Expired Documents", Value: strconv.Itoa(summary.ExpirationAlerts.ExpiredDocuments)},
		},
		StatusBreakdown: []ChartPoint{
			{Label: "compliant", Value: float64(summary.ComplianceBreakdown.Compliant)},
			{Label: "partial", Value: float64(summary.ComplianceBreakdown.Partial)},
			{Label: "non_compliant", Value: float64(summary.ComplianceBreakdown.NonCompliant)},
		},
		GeneratedAt: summary.GeneratedAt,
	}

	for _, bt := range sortedBusinessTypes(summary.BusinessTypeBreakdown) {
		payload.BusinessTypeScores = append(payload.BusinessTypeScores, ChartPoint{
			Label: string(bt),
			Value: summary.BusinessTypeBreakdown[bt].AverageScore,
		})
	}

	if summary.ExpirationAlerts.ExpiredDocuments > 0 {
		payload.Alerts = append(payload.Alerts, Alert{
			Severity: domain.SeverityHigh,
			Message:  fmt.Sprintf("%d documents have expired", summary.ExpirationAlerts.ExpiredDocuments),
		})
	}
	if summary.ExpirationAlerts.ExpiringSoon > 0 {
		payload.Alerts = append(payload.Alerts, Alert{
			Severity: domain.SeverityMedium,
			Message:  fmt.Sprintf("%d documents expire within 30 days", summary.ExpirationAlerts.ExpiringSoon),
		})
	}
	for _, issue := range summary.TopIssues {
		if issue.Severity != domain.SeverityHigh {
			continue
		}
		payload.Alerts = append(payload.Alerts, Alert{
			Severity: domain.SeverityHigh,
			Message:  fmt.Sprintf("%d suppliers are missing %s", issue.AffectedSuppliers, issue.Issue),
		})
	}
	return payload
}
