// Package forms is the single parameterised form component every screen is
// built from.
//
// A Spec declares a screen: its fields, the backend call it makes, how the
// response is rendered and the static message shown on failure. A Form is a
// mounted Spec holding the field values, the busy flag and the last result.
// Catalog returns the Specs of every screen the client offers.
package forms

import "context"

// Field is one input of a screen. Key is the JSON name sent to the backend.
type Field struct {
	Key      string
	Label    string
	Secret   bool
	Optional bool
}

type Spec struct {
	Name  string
	Title string

	Method string
	Path   string
	Fields []Field

	// NoBody sends the request without a body (generator-style actions).
	NoBody bool
	// Authenticated attaches the session's Authorization header.
	Authenticated bool
	// AutoSubmit submits as soon as the screen opens.
	AutoSubmit bool

	FailureMessage string

	// Render turns a 2xx body into display text. Nil means RenderJSON.
	Render func(raw []byte) (string, error)
	// OnSuccess runs after a successful render with the submitted values.
	// An error turns the submission into a failure.
	OnSuccess func(ctx context.Context, values map[string]string, raw []byte) error

	// Next is the screen to open after success.
	Next string
}
