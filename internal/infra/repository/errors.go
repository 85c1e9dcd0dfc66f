package repository

import "errors"

var (
	ErrInvalidCounterData  = errors.New("invalid notification counter data")
	ErrInvalidRegistryData = errors.New("invalid reminder registry data")
	ErrRegistryConflict    = errors.New("reminder registry update conflicted too many times")
)
