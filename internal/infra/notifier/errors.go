package notifier

import "errors"

var (
	ErrNilRequest       = errors.New("notification request is nil")
	ErrCircuitOpen      = errors.New("notification platform circuit open")
	ErrUnexpectedStatus = errors.New("unexpected status code from notification platform")
	ErrTaskExists       = errors.New("task already exists on notification platform")
)
