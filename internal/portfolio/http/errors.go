package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"github.com/walletworks/portfolio/internal/portfolio/service"
	"github.com/walletworks/portfolio/pkg/portfoliosdk"
	"github.com/walletworks/portfolio/pkg/slogx"
)

// decodeRequest decodes a JSON body into dst, writing the error response
// itself when the body is bad. A value of the wrong type for a known field
// (a fractional quantity, a string id) is a validation failure on that
// field, not a generic bad-request.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		apiErr := &portfoliosdk.ValidationAPIError{
			StatusCode: http.StatusBadRequest,
			Message:    "Request validation failed",
			Details: map[string]string{
				typeErr.Field: typeMismatchMessage(typeErr.Type),
			},
		}
		apiErr.WriteError(w)
		return false
	}

	writeInvalidRequest(w, "Invalid JSON in request body")
	return false
}

func typeMismatchMessage(want reflect.Type) string {
	for want.Kind() == reflect.Pointer {
		want = want.Elem()
	}
	switch want.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "Must be an integer"
	case reflect.String:
		return "Must be a string"
	case reflect.Bool:
		return "Must be a boolean"
	default:
		return "Invalid value"
	}
}

// writeServiceError maps service layer errors onto the wire. Validation
// errors carry their per-field details; sentinels map to 404/409; anything
// else is logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		apiErr := &portfoliosdk.ValidationAPIError{
			StatusCode: http.StatusBadRequest,
			Message:    "Request validation failed",
			Details:    verr.Fields,
		}
		apiErr.WriteError(w)
		return
	}

	var apiErr *portfoliosdk.APIError
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		apiErr = &portfoliosdk.APIError{
			StatusCode:  http.StatusNotFound,
			Code:        portfoliosdk.ErrorCodeClientNotFound,
			Description: "Client not found",
		}
	case errors.Is(err, service.ErrAssetNotFound):
		apiErr = &portfoliosdk.APIError{
			StatusCode:  http.StatusNotFound,
			Code:        portfoliosdk.ErrorCodeAssetNotFound,
			Description: "Asset not found",
		}
	case errors.Is(err, service.ErrAllocationNotFound):
		apiErr = &portfoliosdk.APIError{
			StatusCode:  http.StatusNotFound,
			Code:        portfoliosdk.ErrorCodeAllocationNotFound,
			Description: "Allocation not found",
		}
	case errors.Is(err, service.ErrDuplicateAllocation):
		apiErr = &portfoliosdk.APIError{
			StatusCode:  http.StatusConflict,
			Code:        portfoliosdk.ErrorCodeDuplicateAllocation,
			Description: "An allocation for this client and asset already exists",
		}
	case errors.Is(err, service.ErrEmailTaken):
		apiErr = &portfoliosdk.APIError{
			StatusCode:  http.StatusConflict,
			Code:        portfoliosdk.ErrorCodeEmailTaken,
			Description: "A client with this email already exists",
		}
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		apiErr = &portfoliosdk.APIError{
			StatusCode:  http.StatusInternalServerError,
			Code:        portfoliosdk.ErrorCodeServerError,
			Description: "Internal server error",
		}
	}
	apiErr.WriteError(w)
}

// writeInvalidRequest reports a malformed request body or path parameter.
func writeInvalidRequest(w http.ResponseWriter, description string) {
	apiErr := &portfoliosdk.APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        portfoliosdk.ErrorCodeInvalidRequest,
		Description: description,
	}
	apiErr.WriteError(w)
}
