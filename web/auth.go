// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package web is the optional dashboard front end: a single
// bcrypt-gated password prompt in front of a read-only view of past
// parse runs. Grounded on the teacher's web/auth package (session
// cookie shape, SessionStore) and web/auth/password.go (bcrypt
// wrapper), generalized from the teacher's per-clan login scheme to a
// single shared operator password, since this dashboard has one
// audience (whoever runs m2parse serve) rather than one account per
// clan.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SessionCookieName is the cookie carrying a signed-in session's ID.
const SessionCookieName = "m2parse_session"

// Session is one signed-in browser session.
type Session struct {
	ID        string
	ExpiresAt time.Time
}

// SessionStore tracks live sessions in memory. Restarting the server
// signs everyone out — acceptable for a local diagnostics dashboard,
// grounded on the teacher's web/auth.SessionStore which makes the same
// tradeoff.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore returns an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create starts a new session, valid for 24 hours.
func (s *SessionStore) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := &Session{ID: generateSessionID(), ExpiresAt: time.Now().Add(24 * time.Hour)}
	s.sessions[session.ID] = session
	return session
}

// Get returns the session for id, or nil if it doesn't exist or has
// expired.
func (s *SessionStore) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil
	}
	return session
}

// Delete ends a session.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func generateSessionID() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// PasswordGate holds the bcrypt hash of the dashboard's one operator
// password, set once at server startup from serve --password. No
// password is generated when none is given; NewPasswordGate then
// returns a gate that lets every request through.
type PasswordGate struct {
	hash string
}

// NewPasswordGate hashes password at bcrypt's default cost. An empty
// password disables the gate entirely (every request is treated as
// authenticated) — used for local development, same convenience the
// teacher's ValidateCredentials sidesteps by trusting the clan-login
// form outright.
func NewPasswordGate(password string) (*PasswordGate, error) {
	if password == "" {
		return &PasswordGate{}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &PasswordGate{hash: string(hash)}, nil
}

// Disabled reports whether this gate accepts every password (no
// password configured).
func (g *PasswordGate) Disabled() bool {
	return g.hash == ""
}

// Check reports whether password matches the configured hash.
func (g *PasswordGate) Check(password string) bool {
	if g.Disabled() {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(g.hash), []byte(password)) == nil
}

// SetSessionCookie attaches session's cookie to the response.
func SetSessionCookie(w http.ResponseWriter, session *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// SessionFromRequest looks up r's session cookie in store, returning
// nil if absent or expired.
func SessionFromRequest(r *http.Request, store *SessionStore) *Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	return store.Get(cookie.Value)
}
