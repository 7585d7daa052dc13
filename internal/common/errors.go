package common

import "errors"

var (
	// Session errors.
	ErrEmptyToken    = errors.New("empty token")
	ErrInvalidToken  = errors.New("invalid token")
	ErrCorruptedSlot = errors.New("corrupted session slot")
)
