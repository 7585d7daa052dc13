package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/payforms/internal/client/api"
	"github.com/dmitrijs2005/payforms/internal/client/models"
)

const (
	ScreenLogin     = "login"
	ScreenRegister  = "register"
	ScreenDashboard = "dashboard"
	ScreenCard      = "card"
	ScreenACH       = "ach"
	ScreenWire      = "wire"
	ScreenCrypto    = "crypto"
)

// SessionSink receives the token of a successful login.
type SessionSink interface {
	Start(ctx context.Context, username, token string) error
}

// Catalog returns every screen in menu order.
func Catalog(sink SessionSink) []Spec {
	return []Spec{
		{
			Name:   ScreenLogin,
			Title:  "Login",
			Method: http.MethodPost,
			Path:   "/login",
			Fields: []Field{
				{Key: "username", Label: "Username"},
				{Key: "password", Label: "Password", Secret: true},
			},
			FailureMessage: "Login failed. Please check your credentials.",
			Render:         Static("Login successful"),
			OnSuccess:      storeToken(sink),
			Next:           ScreenDashboard,
		},
		{
			Name:   ScreenRegister,
			Title:  "Register",
			Method: http.MethodPost,
			Path:   "/register",
			Fields: []Field{
				{Key: "username", Label: "Username"},
				{Key: "password", Label: "Password", Secret: true},
				{Key: "role", Label: "Role"},
			},
			FailureMessage: "Registration failed",
			Render:         Static("Registration successful"),
			Next:           ScreenLogin,
		},
		{
			Name:           ScreenDashboard,
			Title:          "Dashboard",
			Method:         http.MethodGet,
			Path:           "/dashboard",
			NoBody:         true,
			Authenticated:  true,
			AutoSubmit:     true,
			FailureMessage: "Failed to load dashboard",
			Render:         RenderContent,
		},
		{
			Name:   ScreenCard,
			Title:  "Process Card Payment",
			Method: http.MethodPost,
			Path:   "/process_card",
			Fields: []Field{
				{Key: "card_number", Label: "Card Number"},
				{Key: "expiry_date", Label: "Expiry Date"},
				{Key: "cvv", Label: "CVV", Secret: true},
				{Key: "card_type", Label: "Card Type", Optional: true},
			},
			FailureMessage: "Payment processing failed",
			Render:         RenderCard,
		},
		{
			Name:           ScreenACH,
			Title:          "Generate ACH Payment",
			Method:         http.MethodPost,
			Path:           "/generate_ach",
			NoBody:         true,
			FailureMessage: "Failed to generate ACH details",
			Render:         RenderMessage,
		},
		{
			Name:           ScreenWire,
			Title:          "Process Wire Transfer",
			Method:         http.MethodPost,
			Path:           "/receive_bank_transfer",
			NoBody:         true,
			FailureMessage: "Wire transfer processing failed",
			Render:         RenderMessage,
		},
		{
			Name:   ScreenCrypto,
			Title:  "Convert to Crypto Wallet",
			Method: http.MethodPost,
			Path:   "/convert_to_crypto",
			Fields: []Field{
				{Key: "amount", Label: "Amount in USD"},
			},
			FailureMessage: "Crypto conversion failed",
			Render:         RenderConversion,
		},
	}
}

// Lookup finds a screen by name.
func Lookup(specs []Spec, name string) (Spec, bool) {
	for _, s := range specs {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

// storeToken starts a session when the login answer carries a token. A 2xx
// answer without one still counts as success.
func storeToken(sink SessionSink) func(context.Context, map[string]string, []byte) error {
	return func(ctx context.Context, values map[string]string, raw []byte) error {
		if len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		var resp models.LoginResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return fmt.Errorf("%w: %v", api.ErrMalformedResponse, err)
		}
		if resp.Token == "" {
			return nil
		}
		return sink.Start(ctx, values["username"], resp.Token)
	}
}
