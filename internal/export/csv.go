package export

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"vendorguard/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// reportColumns defines the per-supplier CSV header. The column order is
// fixed so exported rows stay round-trip parseable.
var reportColumns = []string{
	"Supplier ID",
	"Supplier Name",
	"Business Type",
	"Overall Status",
	"Overall Score",
	"Total Documents",
	"Required Documents",
	"Provided Documents",
	"Missing Documents",
	"Expiring Documents",
	"Violations",
	"Next Actions",
	"Generated At",
	"Valid Until",
}

// summaryColumns defines the fleet summary CSV header.
var summaryColumns = []string{
	"Total Suppliers",
	"Compliant",
	"Partial",
	"Non-Compliant",
	"Average Score",
	"Expired Documents",
	"Expiring Soon",
	"Expiring Next Month",
	"Top Issue",
	"Period Start",
	"Period End",
	"Generated At",
}

// ReportCSV renders one compliance report as a two-line CSV string
// (header plus one row).
func ReportCSV(report *domain.ComplianceReport) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(reportColumns); err != nil {
		return "", err
	}
	if err := w.Write(reportToRow(report)); err != nil {
		return "", err
	}
	w.Flush()
	return sb.String(), w.Error()
}

// SummaryCSV renders a fleet summary as a two-line CSV string.
func SummaryCSV(summary *domain.ComplianceSummaryReport) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(summaryColumns); err != nil {
		return "", err
	}
	if err := w.Write(summaryToRow(summary)); err != nil {
		return "", err
	}
	w.Flush()
	return sb.String(), w.Error()
}

func reportToRow(report *domain.ComplianceReport) []string {
	row := make([]string, len(reportColumns))
	row[0] = report.SupplierID.String()
	row[1] = report.SupplierName
	row[2] = string(report.BusinessType)
	row[3] = string(report.OverallStatus)
	row[4] = formatScore(report.OverallScore)
	row[5] = strconv.Itoa(report.TotalDocuments)
	row[6] = strconv.Itoa(report.RequiredDocuments)
	row[7] = strconv.Itoa(report.ProvidedDocuments)
	row[8] = strings.Join(report.MissingDocuments, "; ")
	row[9] = joinExpirations(report.ExpiringDocuments)
	row[10] = joinViolations(report.Violations)
	row[11] = strings.Join(report.NextActions, "; ")
	row[12] = report.GeneratedAt.Format(time.RFC3339)
	row[13] = report.ValidUntil.Format(time.RFC3339)
	return row
}

func summaryToRow(summary *domain.ComplianceSummaryReport) []string {
	row := make([]string, len(summaryColumns))
	row[0] = strconv.Itoa(summary.TotalSuppliers)
	row[1] = strconv.Itoa(summary.ComplianceBreakdown.Compliant)
	row[2] = strconv.Itoa(summary.ComplianceBreakdown.Partial)
	row[3] = strconv.Itoa(summary.ComplianceBreakdown.NonCompliant)
	row[4] = formatScore(summary.AverageComplianceScore)
	row[5] = strconv.Itoa(summary.ExpirationAlerts.ExpiredDocuments)
	row[6] = strconv.Itoa(summary.ExpirationAlerts.ExpiringSoon)
	row[7] = strconv.Itoa(summary.ExpirationAlerts.ExpiringNextMonth)
	if len(summary.TopIssues) > 0 {
		row[8] = summary.TopIssues[0].Issue
	}
	row[9] = summary.ReportPeriod.Start.Format(time.RFC3339)
	row[10] = summary.ReportPeriod.End.Format(time.RFC3339)
	row[11] = summary.GeneratedAt.Format(time.RFC3339)
	return row
}

func joinExpirations(infos []domain.ExpiryInfo) string {
	parts := make([]string, 0, len(infos))
	for _, info := range infos {
		parts = append(parts, fmt.Sprintf("%s (%dd)", info.Type, info.DaysUntilExpiry))
	}
	return strings.Join(parts, "; ")
}

func joinViolations(violations []domain.Violation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, fmt.Sprintf("[%s] %s", v.Severity, v.Message))
	}
	return strings.Join(parts, "; ")
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a supplier name for use in Content-Disposition.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized CSV filename for download headers.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string, date time.Time) string {
	return fmt.Sprintf("%s_%s.csv", SanitizeFilename(name), date.Format("2006-01-02"))
}
