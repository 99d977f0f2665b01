package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vendorguard/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrSupplierNotFound):
		return http.StatusNotFound, "SUPPLIER_NOT_FOUND", "supplier not found"
	case errors.Is(err, domain.ErrInvalidSupplierRecord):
		return http.StatusBadGateway, "INVALID_SUPPLIER_RECORD", "supplier record violates lookup contract"
	case errors.Is(err, domain.ErrInvalidReportRequest):
		return http.StatusBadRequest, "INVALID_REQUEST", "invalid report request"
	case errors.Is(err, domain.ErrNoSuppliersInDirectory):
		return http.StatusNotFound, "NO_SUPPLIERS", "no suppliers in directory"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}
