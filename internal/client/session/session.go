// Package session owns the client's authentication state.
//
// A Store is created once at start-up and handed to every component that
// issues authenticated requests. Login creates the session (Start), logout
// destroys it (End); everybody else only reads it. The token is persisted
// under common.SessionKey as {"token": "..."} so a restart keeps the user
// logged in.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/payforms/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/payforms/internal/common"
	"github.com/dmitrijs2005/payforms/internal/dbx"
	"github.com/golang-jwt/jwt/v5"
)

const usernameKey = "username"

// Session is an opaque bearer token plus the name it was obtained for.
type Session struct {
	Token    string
	Username string
}

// persisted mirrors the slot layout.
type persisted struct {
	Token string `json:"token"`
}

// Store keeps the current session in memory and mirrors it to the state DB.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB

	mu      sync.RWMutex
	current *Session
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// Load restores a persisted session, if any. A slot that does not decode or
// holds an empty token is treated as no session.
func (s *Store) Load(ctx context.Context) error {
	repo := s.repo(s.db)

	raw, err := repo.Get(ctx, common.SessionKey)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if raw == nil {
		return nil
	}

	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("%w: %v", common.ErrCorruptedSlot, err)
	}
	if p.Token == "" {
		return nil
	}

	username, err := repo.Get(ctx, usernameKey)
	if err != nil {
		return err
	}

	s.current = &Session{Token: p.Token, Username: string(username)}
	return nil
}

// Start creates the session after a successful login and persists it.
func (s *Store) Start(ctx context.Context, username, token string) error {
	if token == "" {
		return common.ErrEmptyToken
	}

	slot, err := json.Marshal(persisted{Token: token})
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, common.SessionKey, slot); err != nil {
			return err
		}
		return repo.Set(ctx, usernameKey, []byte(username))
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = &Session{Token: token, Username: username}
	s.mu.Unlock()
	return nil
}

// End destroys the session and removes the persisted slot. Ending when no
// session exists is not an error.
func (s *Store) End(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Delete(ctx, common.SessionKey); err != nil {
			return err
		}
		return repo.Delete(ctx, usernameKey)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

// Current returns a copy of the active session.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Token returns the active token or "".
func (s *Store) Token() string {
	sess, _ := s.Current()
	return sess.Token
}

// AuthHeader returns the Authorization header value, or "" when there is
// no session.
func (s *Store) AuthHeader() string {
	token := s.Token()
	if token == "" {
		return ""
	}
	return common.BearerPrefix + token
}

// Claims is what the client can read from a JWT token without the signing
// key. Nothing is verified; the values are for display only.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// PeekClaims parses token as an unverified JWT. Opaque tokens yield
// common.ErrInvalidToken.
func PeekClaims(token string) (Claims, error) {
	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	c := Claims{Subject: rc.Subject}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}
