package common

import "github.com/google/uuid"

// WipeByteArray overwrites b with zeros. Safe to call with nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NewRequestID returns a fresh identifier for the X-Request-ID header.
func NewRequestID() string {
	return uuid.NewString()
}
