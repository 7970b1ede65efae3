package response

import (
	"errors"
	"net/http"

	"github.com/hrkit/biotime-bridge-go/internal/domain/attendance"
	"github.com/hrkit/biotime-bridge-go/internal/pkg/biotime"
	"github.com/hrkit/biotime-bridge-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Upstream credential rejection: relay the upstream's own status.
	var authErr *biotime.AuthError
	if errors.As(err, &authErr) {
		UpstreamError(w, authErr.Status, authErr.Body)
		return
	}

	// Any other non-success upstream response.
	var apiErr *biotime.APIError
	if errors.As(err, &apiErr) {
		UpstreamError(w, apiErr.Status, apiErr.Body)
		return
	}

	// Upstream sent data we refuse to compute a report from.
	var formatErr *attendance.DataFormatError
	if errors.As(err, &formatErr) {
		BadGateway(w, formatErr.Error())
		return
	}

	// Default
	InternalServerError(w, "An unexpected error occurred")
}
