// Package api is the HTTP/JSON transport between the client and the backend.
//
// # Overview
//
// Client.Do sends exactly one request per call: JSON body when a payload is
// given, Accept: application/json, a fresh X-Request-ID, and, for
// authenticated calls, the Authorization header produced by the injected
// TokenSource. The request lives as long as the caller's context; an
// optional per-request timeout can be configured. There are no retries.
//
// DecodeContent turns an opaque body (dashboard content) into display text.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx answers are *StatusError,
// which matches ErrUnexpectedStatus and, for 401/403, ErrUnauthorized.
// Bodies that cannot be decoded wrap ErrMalformedResponse.
package api
