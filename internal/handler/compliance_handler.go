package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vendorguard/internal/export"
	"vendorguard/internal/service"
)

// ComplianceHandler handles compliance report endpoints.
type ComplianceHandler struct {
	complianceService service.ComplianceService
}

// NewComplianceHandler creates a new ComplianceHandler.
func NewComplianceHandler(complianceService service.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceService: complianceService}
}

func parseSupplierID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_SUPPLIER_ID", "supplier id must be a valid UUID")
		return uuid.UUID{}, false
	}
	return id, true
}

// GetSupplierReport handles GET /api/v1/suppliers/:id/compliance
func (h *ComplianceHandler) GetSupplierReport(c *gin.Context) {
	id, ok := parseSupplierID(c)
	if !ok {
		return
	}

	report, err := h.complianceService.SupplierReport(c.Request.Context(), id)
	if err != nil {
		log.Printf("complianceHandler: report generation failed for %s: %v", id, err)
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, report)
}

// GetSupplierStatus handles GET /api/v1/suppliers/:id/compliance/status
func (h *ComplianceHandler) GetSupplierStatus(c *gin.Context) {
	id, ok := parseSupplierID(c)
	if !ok {
		return
	}

	status, err := h.complianceService.SupplierStatus(c.Request.Context(), id)
	if err != nil {
		httpStatus, code, msg := MapDomainError(err)
		RespondError(c, httpStatus, code, msg)
		return
	}
	RespondOK(c, status)
}

// ExportSupplierReport handles GET /api/v1/suppliers/:id/compliance/export
// Supported formats: csv (default), text.
func (h *ComplianceHandler) ExportSupplierReport(c *gin.Context) {
	id, ok := parseSupplierID(c)
	if !ok {
		return
	}

	report, err := h.complianceService.SupplierReport(c.Request.Context(), id)
	if err != nil {
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		body, err := export.ReportCSV(report)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "failed to render CSV")
			return
		}
		serveCSV(c, export.BuildFilename(report.SupplierName, report.GeneratedAt), body)
	case "text":
		c.String(http.StatusOK, export.ReportText(report))
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or text")
	}
}

// GetSummary handles GET /api/v1/compliance/summary
func (h *ComplianceHandler) GetSummary(c *gin.Context) {
	summary, err := h.complianceService.FleetSummary(c.Request.Context())
	if err != nil {
		log.Printf("complianceHandler: summary generation failed: %v", err)
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, summary)
}

// ExportSummary handles GET /api/v1/compliance/summary/export
// Supported formats: csv (default), text, executive.
func (h *ComplianceHandler) ExportSummary(c *gin.Context) {
	summary, err := h.complianceService.FleetSummary(c.Request.Context())
	if err != nil {
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		body, err := export.SummaryCSV(summary)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "failed to render CSV")
			return
		}
		serveCSV(c, export.BuildFilename("compliance_summary", summary.GeneratedAt), body)
	case "text":
		c.String(http.StatusOK, export.SummaryText(summary))
	case "executive":
		c.String(http.StatusOK, export.ExecutiveSummary(summary))
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv, text, or executive")
	}
}

// GetDashboard handles GET /api/v1/compliance/dashboard
func (h *ComplianceHandler) GetDashboard(c *gin.Context) {
	payload, err := h.complianceService.Dashboard(c.Request.Context())
	if err != nil {
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, payload)
}

// serveCSV writes a CSV attachment with a BOM for Excel compatibility.
func serveCSV(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	_, _ = c.Writer.Write(export.BOM)
	_, _ = c.Writer.WriteString(body)
}
