// Package services contains application services for the payforms client.
// This file defines the authentication service: session restore at start-up,
// session creation after login, logout and a human-readable status line.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/payforms/internal/client/session"
	"github.com/dmitrijs2005/payforms/internal/common"
	"github.com/dmitrijs2005/payforms/internal/logging"
)

// AuthService defines authentication operations for the front ends.
//
// Contract:
//   - Restore: load a persisted session; a corrupted slot is discarded.
//   - Start: create the session after a successful login (forms.SessionSink).
//   - Logout: destroy the session and its persisted slot.
//   - LoggedIn: report whether a session exists.
//   - Status: describe the session for display.
type AuthService interface {
	Restore(ctx context.Context) error
	Start(ctx context.Context, username, token string) error
	Logout(ctx context.Context) error
	LoggedIn() bool
	Status(now time.Time) string
}

type authService struct {
	store *session.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService over the given session store.
func NewAuthService(store *session.Store, log logging.Logger) AuthService {
	return &authService{store: store, log: log.With("component", "auth")}
}

// Restore loads the persisted session. A slot that cannot be decoded is
// removed so the next start is clean.
func (a *authService) Restore(ctx context.Context) error {
	err := a.store.Load(ctx)
	if errors.Is(err, common.ErrCorruptedSlot) {
		a.log.Warn(ctx, "discarding corrupted session slot", "err", err)
		return a.store.End(ctx)
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if sess, ok := a.store.Current(); ok {
		a.log.Info(ctx, "session restored", "username", sess.Username)
	}
	return nil
}

func (a *authService) Start(ctx context.Context, username, token string) error {
	if err := a.store.Start(ctx, username, token); err != nil {
		a.log.Error(ctx, "session start failed", "username", username, "err", err)
		return err
	}
	a.log.Info(ctx, "logged in", "username", username)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.End(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "err", err)
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) LoggedIn() bool {
	_, ok := a.store.Current()
	return ok
}

// Status prefers the stored username and falls back to the token's subject
// claim. An expiry in the past is reported but not enforced.
func (a *authService) Status(now time.Time) string {
	sess, ok := a.store.Current()
	if !ok {
		return "not logged in"
	}

	name := sess.Username
	claims, err := session.PeekClaims(sess.Token)
	if err != nil {
		if name == "" {
			return "logged in"
		}
		return "logged in as " + name
	}

	if name == "" {
		name = claims.Subject
	}
	status := "logged in"
	if name != "" {
		status += " as " + name
	}
	if !claims.ExpiresAt.IsZero() && now.After(claims.ExpiresAt) {
		status += " (token expired " + claims.ExpiresAt.UTC().Format(time.RFC3339) + ")"
	}
	return status
}
