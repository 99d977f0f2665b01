package domain

// BusinessType classifies a supplier's legal structure, which determines
// its required document set.
type BusinessType string

const (
	BusinessTypePtyLtd             BusinessType = "pty_ltd"
	BusinessTypeCorporation        BusinessType = "corporation"
	BusinessTypeSoleProprietorship BusinessType = "sole_proprietorship"
	BusinessTypePartnership        BusinessType = "partnership"
	BusinessTypeCloseCorporation   BusinessType = "close_corporation"
)

// IsValid returns true if the business type is a recognized value.
func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessTypePtyLtd, BusinessTypeCorporation, BusinessTypeSoleProprietorship,
		BusinessTypePartnership, BusinessTypeCloseCorporation:
		return true
	}
	return false
}

// DocumentStatus represents the lifecycle state of a submitted document.
type DocumentStatus string

const (
	DocumentStatusValid    DocumentStatus = "valid"
	DocumentStatusExpired  DocumentStatus = "expired"
	DocumentStatusExpiring DocumentStatus = "expiring"
	DocumentStatusRejected DocumentStatus = "rejected"
	DocumentStatusPending  DocumentStatus = "pending"
)

// VerificationStatus represents the manual review state of a document.
type VerificationStatus string

const (
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// OverallStatus is the tri-state compliance classification of a supplier.
type OverallStatus string

const (
	OverallStatusCompliant    OverallStatus = "compliant"
	OverallStatusPartial      OverallStatus = "partial"
	OverallStatusNonCompliant OverallStatus = "non_compliant"
)

// ExpiryStatus classifies a dated document relative to the expiration window.
type ExpiryStatus string

const (
	ExpiryStatusExpired  ExpiryStatus = "expired"
	ExpiryStatusExpiring ExpiryStatus = "expiring"
	ExpiryStatusValid    ExpiryStatus = "valid"
)

// ViolationType identifies the kind of compliance problem detected.
type ViolationType string

const (
	ViolationTypeExpired   ViolationType = "expired"
	ViolationTypeMissing   ViolationType = "missing"
	ViolationTypeInvalid   ViolationType = "invalid"
	ViolationTypeDuplicate ViolationType = "duplicate"
)

// ViolationSeverity ranks how urgently a violation needs attention.
type ViolationSeverity string

const (
	SeverityHigh   ViolationSeverity = "high"
	SeverityMedium ViolationSeverity = "medium"
	SeverityLow    ViolationSeverity = "low"
)

// Rank returns a numeric ordering for severities (higher is more severe).
func (s ViolationSeverity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}
