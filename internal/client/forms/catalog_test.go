package forms

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/dmitrijs2005/payforms/internal/client/api"
	"github.com/dmitrijs2005/payforms/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	username string
	token    string
	calls    int
	err      error
}

func (s *fakeSink) Start(_ context.Context, username, token string) error {
	s.calls++
	s.username, s.token = username, token
	return s.err
}

// newBackend serves the whole contract. Only "alice"/"secret" may log in.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()

	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body["username"] != "alice" || body["password"] != "secret" {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"token":"tok-alice"}`))
	})
	r.Post("/register", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	})
	r.Get("/dashboard", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer tok-alice" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`"Welcome back"`))
	})
	r.Post("/generate_ach", func(w http.ResponseWriter, req *http.Request) {
		if b, _ := io.ReadAll(req.Body); len(b) != 0 {
			http.Error(w, "unexpected body", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"message":"ACH generated"}`))
	})
	r.Post("/receive_bank_transfer", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Wire details: Chase 1234567890"}`))
	})
	r.Post("/process_card", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body["card_number"] == "" {
			http.Error(w, "missing card", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok","card":{"last4":"1111"},"monero_conversion":{"xmr":"0.42"}}`))
	})
	r.Post("/convert_to_crypto", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body["amount"] == "0" {
			_, _ = w.Write([]byte(`{"status":"rejected"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"converted","result":{"walletAddress":"48xyz"}}`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type staticTokens string

func (s staticTokens) AuthHeader() string { return string(s) }

func mount(t *testing.T, name string, sink SessionSink, tokens api.TokenSource) *Form {
	t.Helper()
	srv := newBackend(t)
	spec, ok := Lookup(Catalog(sink), name)
	require.True(t, ok, "screen %s must exist", name)
	return New(spec, api.NewClient(srv.URL, tokens, logging.Discard()), logging.Discard())
}

func TestCatalog_Screens(t *testing.T) {
	specs := Catalog(&fakeSink{})

	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name)
		assert.NotEmpty(t, s.FailureMessage, s.Name)
		assert.NotEmpty(t, s.Path, s.Name)
	}
	assert.Equal(t, []string{ScreenLogin, ScreenRegister, ScreenDashboard, ScreenCard, ScreenACH, ScreenWire, ScreenCrypto}, names)

	_, ok := Lookup(specs, "nope")
	assert.False(t, ok)
}

func TestLogin_ValidCredentialsStoreTokenAndGoToDashboard(t *testing.T) {
	sink := &fakeSink{}
	f := mount(t, ScreenLogin, sink, nil)
	f.Set("username", "alice")
	f.Set("password", "secret")

	out := f.Submit(context.Background())

	require.True(t, out.OK, "err: %v", out.Err)
	assert.Equal(t, ScreenDashboard, out.Next)
	assert.Equal(t, 1, sink.calls)
	assert.Equal(t, "alice", sink.username)
	assert.Equal(t, "tok-alice", sink.token)
}

func TestLogin_InvalidCredentialsLeaveSessionUntouched(t *testing.T) {
	sink := &fakeSink{}
	f := mount(t, ScreenLogin, sink, nil)
	f.Set("username", gofakeit.Username())
	f.Set("password", gofakeit.Password(true, true, true, false, false, 12))

	out := f.Submit(context.Background())

	assert.False(t, out.OK)
	assert.ErrorIs(t, out.Err, api.ErrUnauthorized)
	assert.Empty(t, out.Next)
	assert.Equal(t, "Login failed. Please check your credentials.", f.Result())
	assert.Zero(t, sink.calls)
}

func TestLogin_NoTokenStillSucceeds(t *testing.T) {
	for _, body := range []string{`{}`, ``, `{"token":""}`} {
		sink := &fakeSink{}
		spec, _ := Lookup(Catalog(sink), ScreenLogin)

		f := New(spec, replyWith(body, nil), logging.Discard())
		out := f.Submit(context.Background())

		assert.True(t, out.OK, body)
		assert.Equal(t, ScreenDashboard, out.Next, body)
		assert.Zero(t, sink.calls, body)
	}
}

func TestLogin_SinkErrorIsFailure(t *testing.T) {
	sink := &fakeSink{err: errors.New("db locked")}
	f := mount(t, ScreenLogin, sink, nil)
	f.Set("username", "alice")
	f.Set("password", "secret")

	out := f.Submit(context.Background())
	assert.False(t, out.OK)
	assert.Equal(t, "Login failed. Please check your credentials.", out.Result)
}

func TestRegister_GoesToLogin(t *testing.T) {
	f := mount(t, ScreenRegister, &fakeSink{}, nil)
	f.Set("username", gofakeit.Username())
	f.Set("password", "pw")
	f.Set("role", "user")

	out := f.Submit(context.Background())
	require.True(t, out.OK)
	assert.Equal(t, ScreenLogin, out.Next)
	assert.Equal(t, "Registration successful", out.Result)
}

func TestDashboard_UsesBearerHeader(t *testing.T) {
	t.Run("with session", func(t *testing.T) {
		f := mount(t, ScreenDashboard, &fakeSink{}, staticTokens("Bearer tok-alice"))
		out := f.Submit(context.Background())
		require.True(t, out.OK)
		assert.Equal(t, "Welcome back", out.Result)
	})

	t.Run("without session", func(t *testing.T) {
		f := mount(t, ScreenDashboard, &fakeSink{}, staticTokens(""))
		out := f.Submit(context.Background())
		assert.False(t, out.OK)
		assert.Equal(t, "Failed to load dashboard", out.Result)
	})
}

func TestProcessCard_ResultRenderedVerbatim(t *testing.T) {
	f := mount(t, ScreenCard, &fakeSink{}, nil)
	f.Set("card_number", "4111111111111111")
	f.Set("expiry_date", "12/30")
	f.Set("cvv", "123")

	out := f.Submit(context.Background())

	require.True(t, out.OK, "err: %v", out.Err)
	assert.JSONEq(t, `{"status":"ok","card":{"last4":"1111"},"monero_conversion":{"xmr":"0.42"}}`, out.Result)
}

func TestProcessCard_FailureMessage(t *testing.T) {
	f := mount(t, ScreenCard, &fakeSink{}, nil)

	out := f.Submit(context.Background())
	assert.False(t, out.OK)
	assert.Equal(t, "Payment processing failed", f.Result())
}

func TestGenerateACH_DisplaysMessage(t *testing.T) {
	f := mount(t, ScreenACH, &fakeSink{}, nil)

	out := f.Submit(context.Background())
	require.True(t, out.OK, "err: %v", out.Err)
	assert.Equal(t, "ACH generated", f.Result())
}

func TestWireTransfer_DisplaysMessage(t *testing.T) {
	f := mount(t, ScreenWire, &fakeSink{}, nil)

	out := f.Submit(context.Background())
	require.True(t, out.OK)
	assert.Equal(t, "Wire details: Chase 1234567890", out.Result)
}

func TestConvertToCrypto(t *testing.T) {
	f := mount(t, ScreenCrypto, &fakeSink{}, nil)

	f.Set("amount", "100")
	out := f.Submit(context.Background())
	require.True(t, out.OK)
	assert.Equal(t, "converted\nWallet address: 48xyz", out.Result)

	f.Set("amount", "0")
	out = f.Submit(context.Background())
	require.True(t, out.OK)
	assert.Equal(t, "rejected", out.Result)
}

func TestUnreachableBackend_EveryScreenFailsIndependently(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := api.NewClient(url, staticTokens(""), logging.Discard())
	for _, spec := range Catalog(&fakeSink{}) {
		f := New(spec, client, logging.Discard())
		out := f.Submit(context.Background())
		assert.False(t, out.OK, spec.Name)
		assert.Equal(t, spec.FailureMessage, f.Result(), spec.Name)
		assert.False(t, f.Busy(), spec.Name)
	}
}

func TestLogin_NonObjectBodyIsMalformed(t *testing.T) {
	for _, body := range []string{`"welcome"`, `[]`, `not json`} {
		sink := &fakeSink{}
		spec, _ := Lookup(Catalog(sink), ScreenLogin)

		f := New(spec, replyWith(body, nil), logging.Discard())
		out := f.Submit(context.Background())

		assert.False(t, out.OK, body)
		assert.ErrorIs(t, out.Err, api.ErrMalformedResponse, body)
		assert.Equal(t, "Login failed. Please check your credentials.", out.Result, body)
		assert.Empty(t, out.Next, body)
		assert.Zero(t, sink.calls, body)
	}
}
