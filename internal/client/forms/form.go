package forms

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/dmitrijs2005/payforms/internal/logging"
)

// Sender performs one backend request. *api.Client satisfies it.
type Sender interface {
	Do(ctx context.Context, method, path string, payload any, authenticated bool) ([]byte, error)
}

// Outcome describes how a Submit call ended.
type Outcome struct {
	// Skipped is set when nothing was sent: a request was already pending
	// or the form was closed.
	Skipped bool
	// OK reports success; Result then holds the rendered response,
	// otherwise the failure message.
	OK     bool
	Result string
	// Next names the screen to open after a success, if any.
	Next string
	// Err is the underlying failure, kept for diagnostics only.
	Err error
}

// Form is one mounted screen: its field values, the busy flag and the last
// result. All methods are safe for concurrent use.
type Form struct {
	spec   Spec
	sender Sender
	log    logging.Logger

	mu     sync.Mutex
	values map[string]string
	busy   bool
	result string
	cancel context.CancelFunc
	closed bool
}

func New(spec Spec, sender Sender, log logging.Logger) *Form {
	return &Form{
		spec:   spec,
		sender: sender,
		log:    log.With("screen", spec.Name),
		values: make(map[string]string, len(spec.Fields)),
	}
}

func (f *Form) Spec() Spec {
	return f.spec
}

// Set updates one field. It is allowed while a request is pending; the
// pending request keeps the values it was started with.
func (f *Form) Set(key, value string) {
	f.mu.Lock()
	f.values[key] = value
	f.mu.Unlock()
}

func (f *Form) Value(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key]
}

// Values returns a copy of the form state.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.values)
}

// Busy reports whether a request is pending.
func (f *Form) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Result returns the last rendered response or failure message.
func (f *Form) Result() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// Close tears the form down: the pending request, if any, is cancelled and
// its completion no longer touches the result. Further submits are skipped.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.cancel != nil {
		f.cancel()
	}
}

// Submit sends the form and waits for the answer. It never panics and
// always leaves Result defined: the rendered response on success, the
// screen's failure message otherwise.
func (f *Form) Submit(ctx context.Context) Outcome {
	f.mu.Lock()
	if f.busy || f.closed {
		res := f.result
		f.mu.Unlock()
		return Outcome{Skipped: true, Result: res}
	}
	ctx, cancel := context.WithCancel(ctx)
	f.busy = true
	f.cancel = cancel
	payload := f.payloadLocked()
	values := maps.Clone(f.values)
	f.mu.Unlock()

	text, err := f.exchange(ctx, payload, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	cancel()
	f.busy = false
	f.cancel = nil

	if f.closed {
		return Outcome{Skipped: true, Err: err}
	}

	if err != nil {
		f.log.Error(ctx, "submit failed", "method", f.spec.Method, "path", f.spec.Path, "err", err)
		f.result = f.spec.FailureMessage
		return Outcome{Result: f.result, Err: err}
	}

	f.result = text
	return Outcome{OK: true, Result: text, Next: f.spec.Next}
}

func (f *Form) exchange(ctx context.Context, payload any, values map[string]string) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic during submit: %v", p)
		}
	}()

	raw, err := f.sender.Do(ctx, f.spec.Method, f.spec.Path, payload, f.spec.Authenticated)
	if err != nil {
		return "", err
	}

	render := f.spec.Render
	if render == nil {
		render = RenderJSON
	}
	text, err = render(raw)
	if err != nil {
		return "", err
	}

	if f.spec.OnSuccess != nil {
		if err := f.spec.OnSuccess(ctx, values, raw); err != nil {
			return "", err
		}
	}
	return text, nil
}

// payloadLocked builds the request body. Generator-style screens send none;
// optional fields are left out when empty.
func (f *Form) payloadLocked() any {
	if f.spec.NoBody {
		return nil
	}
	body := make(map[string]string, len(f.spec.Fields))
	for _, fld := range f.spec.Fields {
		v := f.values[fld.Key]
		if fld.Optional && v == "" {
			continue
		}
		body[fld.Key] = v
	}
	return body
}
