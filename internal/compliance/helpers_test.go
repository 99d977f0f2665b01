package compliance_test

import (
	"time"

	"github.com/google/uuid"

	"vendorguard/internal/domain"
)

// frozenNow is the fixed evaluation instant used across the engine tests.
var frozenNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func frozenClock() time.Time { return frozenNow }

// doc builds a valid, verified document of the given type with no expiry.
func doc(docType string) domain.SupplierDocument {
	return domain.SupplierDocument{
		ID:                 uuid.New(),
		Type:               docType,
		Category:           "general",
		Title:              docType,
		FileName:           docType + ".pdf",
		FileSize:           1024,
		ContentType:        "application/pdf",
		IssueDate:          frozenNow.AddDate(-1, 0, 0),
		Status:             domain.DocumentStatusValid,
		VerificationStatus: domain.VerificationStatusVerified,
		Required:           true,
		UploadedAt:         frozenNow.AddDate(0, -1, 0),
		LastModified:       frozenNow.AddDate(0, -1, 0),
	}
}

// docExpiring builds a document whose expiry is daysOut whole days from now.
// Negative daysOut yields an already-expired document.
func docExpiring(docType string, daysOut int) domain.SupplierDocument {
	d := doc(docType)
	expiry := frozenNow.AddDate(0, 0, daysOut)
	d.ExpiryDate = &expiry
	return d
}

// fullPtyLtdDocs returns all four pty_ltd required documents, valid and
// expiring a year out.
func fullPtyLtdDocs() []domain.SupplierDocument {
	return []domain.SupplierDocument{
		docExpiring("company_registration", 365),
		docExpiring("tax_certificate", 365),
		docExpiring("insurance_certificate", 365),
		docExpiring("bbbee_certificate", 365),
	}
}

func record(name string, bt domain.BusinessType, docs []domain.SupplierDocument) *domain.SupplierRecord {
	return &domain.SupplierRecord{
		ID:           uuid.New(),
		CompanyName:  name,
		BusinessType: bt,
		Documents:    docs,
	}
}
