package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"vendorguard/internal/export"
)

func TestReportText(t *testing.T) {
	out := export.ReportText(sampleReport())

	assert.Contains(t, out, "Compliance Report: Acme Trading (Pty) Ltd")
	assert.Contains(t, out, "Status: partial (score 78.50/100)")
	assert.Contains(t, out, "Documents: 3 provided of 4 required")
	assert.Contains(t, out, "Missing: bbbee_certificate")
	assert.Contains(t, out, "Expiring: insurance_certificate in 12 days")
	assert.Contains(t, out, "1. Submit bbbee_certificate to proceed")
	assert.Contains(t, out, "Generated 2026-08-01, valid until 2026-08-31")
}

func TestSummaryText(t *testing.T) {
	out := export.SummaryText(sampleSummary())

	assert.Contains(t, out, "Suppliers evaluated: 10")
	assert.Contains(t, out, "Compliant: 3, Partial: 4, Non-compliant: 3")
	assert.Contains(t, out, "Average score: 60.00")
	assert.Contains(t, out, "1. bbbee_certificate - 7 suppliers [high]")

	// Business type lines render in lexicographic order.
	ptyIdx := strings.Index(out, "pty_ltd: 8 suppliers")
	soleIdx := strings.Index(out, "sole_proprietorship: 2 suppliers")
	assert.Greater(t, ptyIdx, -1)
	assert.Greater(t, soleIdx, ptyIdx)
}

func TestExecutiveSummaryRiskLevels(t *testing.T) {
	summary := sampleSummary()

	// 3 of 10 non-compliant: 30% sits on the boundary and stays MEDIUM.
	out := export.ExecutiveSummary(summary)
	assert.True(t, strings.HasPrefix(out, "Risk level: MEDIUM."), out)
	assert.Contains(t, out, "30.0% of the fleet at risk")
	assert.Contains(t, out, "missing bbbee_certificate, affecting 7 suppliers")
	assert.Contains(t, out, "2 documents have already expired")

	summary.ComplianceBreakdown.NonCompliant = 4
	summary.ComplianceBreakdown.Partial = 3
	out = export.ExecutiveSummary(summary)
	assert.True(t, strings.HasPrefix(out, "Risk level: HIGH."), out)

	summary.ComplianceBreakdown.NonCompliant = 1
	summary.ComplianceBreakdown.Partial = 6
	out = export.ExecutiveSummary(summary)
	assert.True(t, strings.HasPrefix(out, "Risk level: LOW."), out)
}

func TestExecutiveSummaryEmptyFleet(t *testing.T) {
	summary := sampleSummary()
	summary.TotalSuppliers = 0
	summary.ComplianceBreakdown.Compliant = 0
	summary.ComplianceBreakdown.Partial = 0
	summary.ComplianceBreakdown.NonCompliant = 0

	out := export.ExecutiveSummary(summary)
	assert.True(t, strings.HasPrefix(out, "Risk level: LOW."), out)
}
