package session

import (
	"context"
	"encoding/json"
	"fmt"
)

// Persisted keys. Values are overwritten wholesale on every change.
const (
	keyToken      = "token"
	keyUser       = "user"
	keyRemembered = "rememberedUser"
)

// User is the authenticated identity.
type User struct {
	UserID   string `json:"userid"`
	Username string `json:"username"`
}

// Authenticator is the backend collaborator for login and registration.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (token string, user User, err error)
	Register(ctx context.Context, username, email, password string) error
}

// Store owns the session state: anonymous until a login succeeds or a
// persisted session is restored, anonymous again after logout. The remembered
// username is independent state and survives logout.
type Store struct {
	kv   KV
	auth Authenticator

	user  *User
	token string
}

func NewStore(kv KV, auth Authenticator) *Store {
	return &Store{kv: kv, auth: auth}
}

// Restore loads a persisted session at startup. When both token and user are
// present the store becomes authenticated right away; no network round trip
// and no local expiry check; a stale token is the backend's to reject.
func (s *Store) Restore() {
	tok, err := s.kv.Get(keyToken)
	if err != nil || tok == "" {
		return
	}
	raw, err := s.kv.Get(keyUser)
	if err != nil || raw == "" {
		return
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return
	}
	s.token = tok
	s.user = &u
}

func (s *Store) IsAuthenticated() bool { return s.user != nil && s.token != "" }

// User returns the current identity; ok is false while anonymous.
func (s *Store) User() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// UserID returns the current user id, or empty while anonymous.
func (s *Store) UserID() string {
	if s.user == nil {
		return ""
	}
	return s.user.UserID
}

func (s *Store) Token() string { return s.token }

// RememberedUser returns the persisted username for pre-filling the login
// form; empty when nothing was remembered.
func (s *Store) RememberedUser() string {
	v, _ := s.kv.Get(keyRemembered)
	return v
}

// Login authenticates against the backend. On success the token and user are
// persisted and, when remember is set, the username (never the password) is
// stored separately. On failure nothing is persisted and the state stays
// anonymous.
func (s *Store) Login(ctx context.Context, username, password string, remember bool) error {
	tok, u, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	if err := s.kv.Set(keyToken, tok); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	if err := s.kv.Set(keyUser, string(raw)); err != nil {
		return fmt.Errorf("persisting user: %w", err)
	}
	if remember {
		if err := s.kv.Set(keyRemembered, username); err != nil {
			return fmt.Errorf("persisting remembered user: %w", err)
		}
	} else {
		_ = s.kv.Remove(keyRemembered)
	}

	s.token = tok
	s.user = &u
	return nil
}

// Register creates an account; it does not authenticate.
func (s *Store) Register(ctx context.Context, username, email, password string) error {
	return s.auth.Register(ctx, username, email, password)
}

// Logout clears the persisted token and user and returns to anonymous. The
// remembered username is left untouched.
func (s *Store) Logout() error {
	if err := s.kv.Remove(keyToken); err != nil {
		return err
	}
	if err := s.kv.Remove(keyUser); err != nil {
		return err
	}
	s.token = ""
	s.user = nil
	return nil
}
