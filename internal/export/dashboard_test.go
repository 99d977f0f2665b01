package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorguard/internal/domain"
	"vendorguard/internal/export"
)

func TestDashboardKPIsAndCharts(t *testing.T) {
	payload := export.Dashboard(sampleSummary())

	require.Len(t, payload.KPIs, 5)
	assert.Equal(t, export.KPI{Label: "Suppliers", Value: "10"}, payload.KPIs[0])
	assert.Equal(t, export.KPI{Label: "Average Score", Value: "60.00"}, payload.KPIs[1])
	assert.Equal(t, export.KPI{Label: "Expired Documents", Value: "2"}, payload.KPIs[4])

	require.Len(t, payload.StatusBreakdown, 3)
	assert.Equal(t, export.ChartPoint{Label: "compliant", Value: 3}, payload.StatusBreakdown[0])
	assert.Equal(t, export.ChartPoint{Label: "non_compliant", Value: 3}, payload.StatusBreakdown[2])

	require.Len(t, payload.BusinessTypeScores, 2)
	assert.Equal(t, "pty_ltd", payload.BusinessTypeScores[0].Label)
	assert.Equal(t, 62.5, payload.BusinessTypeScores[0].Value)
	assert.Equal(t, "sole_proprietorship", payload.BusinessTypeScores[1].Label)

	assert.Equal(t, exportNow, payload.GeneratedAt)
}

func TestDashboardAlerts(t *testing.T) {
	payload := export.Dashboard(sampleSummary())

	// Expired banner, expiring banner, then one banner per high issue.
	require.Len(t, payload.Alerts, 4)
	assert.Equal(t, domain.SeverityHigh, payload.Alerts[0].Severity)
	assert.Equal(t, "2 documents have expired", payload.Alerts[0].Message)
	assert.Equal(t, domain.SeverityMedium, payload.Alerts[1].Severity)
	assert.Equal(t, "1 documents expire within 30 days", payload.Alerts[1].Message)
	assert.Equal(t, "7 suppliers are missing bbbee_certificate", payload.Alerts[2].Message)
	assert.Equal(t, "3 suppliers are missing tax_certificate", payload.Alerts[3].Message)
}

func TestDashboardQuietFleet(t *testing.T) {
	summary := sampleSummary()
	summary.TopIssues = nil
	summary.ExpirationAlerts = domain.ExpirationAlerts{}

	payload := export.Dashboard(summary)

	assert.Empty(t, payload.Alerts)
}
