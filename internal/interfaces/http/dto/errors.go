package dto

import "net/http"

// Error codes surfaced by the API. They match the codes carried by
// shared.DomainError so handlers can map domain failures without
// switch statements scattered across the codebase.
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeAlreadyExists    = "ALREADY_EXISTS"
	ErrCodeCodeExhausted    = "CODE_EXHAUSTED"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

var errorCodeHTTPStatus = map[string]int{
	ErrCodeValidationFailed: http.StatusBadRequest,
	ErrCodeUnauthorized:     http.StatusUnauthorized,
	ErrCodeForbidden:        http.StatusForbidden,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeAlreadyExists:    http.StatusConflict,
	ErrCodeCodeExhausted:    http.StatusConflict,
	ErrCodeInternal:         http.StatusInternalServerError,
}

// GetHTTPStatus resolves an error code to its HTTP status. Unknown codes
// fall back to 500 so a missing mapping never leaks as a success.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
