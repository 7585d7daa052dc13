// Package common contains shared constants, sentinel errors and tiny helpers
// used across the payforms client.
package common

const (
	// AuthorizationHeaderName carries the session token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token in the Authorization header value.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName correlates a submission with its log lines.
	RequestIDHeaderName = "X-Request-ID"

	// SessionKey is the persistent slot holding the JSON-encoded session.
	SessionKey = "user"
)
