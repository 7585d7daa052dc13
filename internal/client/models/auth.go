// Package models holds the response shapes of the backend contract. Only
// the fields the client reads are declared; request bodies are built from
// form fields and need no types.
package models

// LoginResponse carries the session token. Token may be absent.
type LoginResponse struct {
	Token string `json:"token,omitempty"`
}
