// Package session tracks who is logged in right now.
//
// The store is a UI convenience cache, not a security boundary: a
// cached admin flag is never trusted for privileged writes, which
// re-check identity against the backend first.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/connectify/connectify/pkg/client"
	"github.com/connectify/connectify/pkg/domain"
)

// State is the session lifecycle position.
type State int

const (
	// StateUnresolved: a token may exist but no determination has been
	// made yet. Consumers must not treat this as logged out.
	StateUnresolved State = iota
	// StateResolving: identity lookup in flight.
	StateResolving
	// StateAuthenticated: token confirmed valid, user populated.
	StateAuthenticated
	// StateAnonymous: no token, or the token was rejected and cleared.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Identity is the "who am I" call, satisfied by *client.Client.
type Identity interface {
	GetMe(ctx context.Context) (*domain.User, error)
}

// Store is the single authority on the current authenticated identity.
// It owns the persisted token through its TokenStore; the cached User
// is invalidated whenever the token is.
type Store struct {
	mu       sync.Mutex
	tokens   TokenStore
	identity Identity
	state    State
	user     *domain.User
}

// NewStore creates a session in the Unresolved state.
func NewStore(tokens TokenStore, identity Identity) *Store {
	return &Store{tokens: tokens, identity: identity, state: StateUnresolved}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the cached identity, or nil outside Authenticated.
func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the persisted bearer token, or "" when logged out.
// Suitable as a client.TokenSource.
func (s *Store) Token() string {
	return s.tokens.Token()
}

// Resolve confirms the persisted token against the backend. With no
// token it settles Anonymous immediately. On a 401 the token is
// discarded; on a transient error the token is kept so a later
// Resolve may succeed, but the session still reports Anonymous.
func (s *Store) Resolve(ctx context.Context) State {
	s.mu.Lock()
	if s.tokens.Token() == "" {
		s.state = StateAnonymous
		s.user = nil
		s.mu.Unlock()
		return StateAnonymous
	}
	s.state = StateResolving
	s.mu.Unlock()

	user, err := s.identity.GetMe(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if client.IsUnauthorized(err) {
			_ = s.tokens.Clear()
		}
		s.state = StateAnonymous
		s.user = nil
		return StateAnonymous
	}
	s.state = StateAuthenticated
	s.user = user
	return StateAuthenticated
}

// Establish stores a freshly issued token and resolves the identity
// behind it. Called by the auth facade after a successful login.
func (s *Store) Establish(ctx context.Context, token string) (State, error) {
	if err := s.tokens.Save(token); err != nil {
		return s.State(), err
	}
	return s.Resolve(ctx), nil
}

// Logout discards the token and settles Anonymous.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnonymous
	s.user = nil
	return s.tokens.Clear()
}

// SetUser replaces the cached identity without touching the token,
// e.g. after the user edits their own profile.
func (s *Store) SetUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateAuthenticated {
		s.user = u
	}
}

// ExpiryHint reports when the persisted token claims to expire. The
// claim is read without signature verification, so it is display-only:
// validity is proven exclusively by the identity lookup.
func (s *Store) ExpiryHint() (time.Time, bool) {
	tok := s.tokens.Token()
	if tok == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
