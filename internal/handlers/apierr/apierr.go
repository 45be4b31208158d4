// Package apierr owns the JSON error body returned by every API operation and
// the translation of service errors into HTTP statuses.
package apierr

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/service"
)

const (
	KindInvalidInput = "invalid_input"
	KindNotFound     = "not_found"
	KindInternal     = "internal"
)

// Error is the body of every non-2xx API response.
type Error struct {
	status  int
	Message string   `json:"error" doc:"Human readable error message"`
	Kind    string   `json:"kind,omitempty" doc:"Machine readable error kind"`
	Details []string `json:"details,omitempty" doc:"Individual validation failures"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

func New(status int, kind, message string, details ...string) *Error {
	return &Error{
		status:  status,
		Message: message,
		Kind:    kind,
		Details: details,
	}
}

// Schema validation failures are reported as 400 rather than huma's 422.
func init() {
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}
		return New(status, kindForStatus(status), msg, details...)
	}
}

func kindForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= http.StatusInternalServerError:
		return KindInternal
	case status >= http.StatusBadRequest:
		return KindInvalidInput
	default:
		return ""
	}
}

// FromService maps a service error onto its HTTP representation. Unexpected
// errors are logged on the request and hidden behind a generic 500.
func FromService(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if validationErr, ok := service.AsValidationError(err); ok {
		return New(http.StatusBadRequest, string(validationErr.Kind), validationErr.Msg)
	}
	if service.IsNotFound(err) {
		return New(http.StatusNotFound, KindNotFound, err.Error())
	}

	logging.GetLogData(ctx).AddData("error", err.Error())
	return New(http.StatusInternalServerError, KindInternal, "internal error")
}
