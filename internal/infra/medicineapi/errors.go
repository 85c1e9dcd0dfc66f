package medicineapi

import "errors"

var (
	ErrUnauthorized     = errors.New("medicine api rejected the bearer token")
	ErrUnexpectedStatus = errors.New("unexpected status code from medicine api")
	ErrInvalidResponse  = errors.New("invalid response from medicine api")
	ErrInvalidDate      = errors.New("invalid date")
)

// APIError carries the status and message the remote API answered with.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return ErrUnexpectedStatus.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return ErrUnauthorized
	}
	return ErrUnexpectedStatus
}
