package portfoliosdk

import (
	"fmt"
	"net/http"

	"github.com/walletworks/portfolio/pkg/httpx"
)

// Error codes returned by the service.
const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeValidation          = "validation_error"
	ErrorCodeClientNotFound      = "client_not_found"
	ErrorCodeAssetNotFound       = "asset_not_found"
	ErrorCodeAllocationNotFound  = "allocation_not_found"
	ErrorCodeDuplicateAllocation = "duplicate_allocation"
	ErrorCodeEmailTaken          = "email_taken"
	ErrorCodeServerError         = "server_error"
)

// APIError represents a structured error response from the service. It
// implements the error interface and is used both by the server (to write
// responses) and by the SDK client (to represent failures).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

// ValidationAPIError carries per-field validation details alongside the
// standard error fields.
type ValidationAPIError struct {
	StatusCode int
	Message    string
	Details    map[string]string
}

func (e *ValidationAPIError) Error() string {
	return fmt.Sprintf("%s: %s", ErrorCodeValidation, e.Message)
}

// WriteError writes this validation error to an HTTP response writer.
func (e *ValidationAPIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ValidationErrorResponse{
		Code:    ErrorCodeValidation,
		Message: e.Message,
		Details: e.Details,
	})
}
