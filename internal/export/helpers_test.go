package export_test

import (
	"time"

	"github.com/google/uuid"

	"vendorguard/internal/domain"
)

var exportNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func sampleReport() *domain.ComplianceReport {
	expiry := exportNow.AddDate(0, 0, 12)
	return &domain.ComplianceReport{
		SupplierID:        uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		SupplierName:      "Acme Trading (Pty) Ltd",
		BusinessType:      domain.BusinessTypePtyLtd,
		OverallStatus:     domain.OverallStatusPartial,
		OverallScore:      78.5,
		TotalDocuments:    3,
		RequiredDocuments: 4,
		ProvidedDocuments: 3,
		MissingDocuments:  []string{"bbbee_certificate"},
		ExpiringDocuments: []domain.ExpiryInfo{
			{Type: "insurance_certificate", ExpiryDate: expiry, DaysUntilExpiry: 12, Status: domain.ExpiryStatusExpiring},
		},
		Violations: []domain.Violation{
			{
				Type:         domain.ViolationTypeExpired,
				Severity:     domain.SeverityMedium,
				Message:      "insurance_certificate expires in 12 days",
				DocumentType: "insurance_certificate",
			},
		},
		Recommendations: []string{"Submit bbbee_certificate to proceed"},
		NextActions:     []string{"Submit bbbee_certificate to proceed", "Schedule renewal for insurance_certificate"},
		GeneratedAt:     exportNow,
		ValidUntil:      exportNow.AddDate(0, 0, 30),
	}
}

func sampleSummary() *domain.ComplianceSummaryReport {
	return &domain.ComplianceSummaryReport{
		TotalSuppliers:         10,
		AverageComplianceScore: 60.0,
		ComplianceBreakdown: domain.ComplianceBreakdown{
			Compliant:    3,
			Partial:      4,
			NonCompliant: 3,
		},
		TopIssues: []domain.TopIssue{
			{Issue: "bbbee_certificate", AffectedSuppliers: 7, Severity: domain.SeverityHigh},
			{Issue: "tax_certificate", AffectedSuppliers: 3, Severity: domain.SeverityHigh},
		},
		ExpirationAlerts: domain.ExpirationAlerts{
			ExpiredDocuments:  2,
			ExpiringSoon:      1,
			ExpiringNextMonth: 4,
		},
		BusinessTypeBreakdown: map[domain.BusinessType]domain.BusinessTypeStats{
			domain.BusinessTypePtyLtd:             {Total: 8, Compliant: 3, AverageScore: 62.5},
			domain.BusinessTypeSoleProprietorship: {Total: 2, Compliant: 0, AverageScore: 50.0},
		},
		ReportPeriod: domain.ReportPeriod{
			Start: exportNow.AddDate(0, 0, -30),
			End:   exportNow,
		},
		GeneratedAt: exportNow,
	}
}
