package reconcile

import "errors"

var (
	ErrInvalidAmount     = errors.New("invalid payment amount")
	ErrStepNotFound      = errors.New("target step not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrImmutableRecord   = errors.New("approved budget version is immutable")
)
