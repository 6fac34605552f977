package dto

import (
	"net/http"
	"strings"

	"github.com/wms/backend/internal/domain/shared"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes. Store
// constraint violations are client errors (duplicate identifier, foreign-key
// mismatch); availability failures are the one 5xx-class domain code.
var ErrorCodeHTTPStatus = map[string]int{
	"NOT_FOUND":                 http.StatusNotFound,
	"ALREADY_EXISTS":            http.StatusBadRequest,
	"INSUFFICIENT_STOCK":        http.StatusBadRequest,
	shared.CodeStoreConstraint:  http.StatusBadRequest,
	shared.CodeStoreUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status for a domain error code. Input
// validation codes (INVALID_*) are client errors; anything unrecognized is a
// server error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
