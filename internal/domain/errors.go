package domain

import "errors"

var (
	ErrInvalidClockTime      = errors.New("invalid clock time")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrInvalidMedicine       = errors.New("invalid medicine")
	ErrMedicineIDMissing     = errors.New("medicine id missing")
)
