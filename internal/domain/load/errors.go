package load

import "errors"

var (
	ErrLoadNotFound       = errors.New("load not found")
	ErrInvalidLeg         = errors.New("invalid leg")
	ErrInvalidEvent       = errors.New("invalid leg event")
	ErrVerifiedTimeLocked = errors.New("actual time is verified and cannot be overwritten automatically")
)
