package domain

import "errors"

var (
	ErrSupplierNotFound       = errors.New("supplier not found")
	ErrInvalidSupplierRecord  = errors.New("supplier record violates lookup contract")
	ErrInvalidReportRequest   = errors.New("invalid report request")
	ErrNoSuppliersInDirectory = errors.New("no suppliers in directory")
)
