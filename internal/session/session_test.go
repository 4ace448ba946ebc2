package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/connectify/connectify/pkg/client"
	"github.com/connectify/connectify/pkg/domain"
)

// fakeIdentity scripts GetMe responses.
type fakeIdentity struct {
	user  *domain.User
	err   error
	calls int
}

func (f *fakeIdentity) GetMe(_ context.Context) (*domain.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func unauthorized() error {
	return &client.HTTPError{StatusCode: 401, Message: "not authenticated"}
}

func TestNewStoreStartsUnresolved(t *testing.T) {
	s := NewStore(NewMemTokenStore("tok"), &fakeIdentity{})
	if got := s.State(); got != StateUnresolved {
		t.Errorf("initial state = %v, want unresolved", got)
	}
	if s.User() != nil {
		t.Error("initial user should be nil")
	}
}

func TestResolveNoToken(t *testing.T) {
	id := &fakeIdentity{}
	s := NewStore(NewMemTokenStore(""), id)

	if got := s.Resolve(context.Background()); got != StateAnonymous {
		t.Errorf("Resolve = %v, want anonymous", got)
	}
	if id.calls != 0 {
		t.Errorf("GetMe called %d times with no token, want 0", id.calls)
	}
}

func TestResolveValidToken(t *testing.T) {
	id := &fakeIdentity{user: &domain.User{Email: "user@test.com", Type: domain.TypeUser}}
	s := NewStore(NewMemTokenStore("tok"), id)

	if got := s.Resolve(context.Background()); got != StateAuthenticated {
		t.Fatalf("Resolve = %v, want authenticated", got)
	}
	if u := s.User(); u == nil || u.Email != "user@test.com" {
		t.Errorf("User = %+v, want cached identity", u)
	}
}

func TestResolveRejectedTokenClearedOnce(t *testing.T) {
	tokens := NewMemTokenStore("stale-token")
	s := NewStore(tokens, &fakeIdentity{err: unauthorized()})

	if got := s.Resolve(context.Background()); got != StateAnonymous {
		t.Fatalf("Resolve = %v, want anonymous", got)
	}
	if tokens.Token() != "" {
		t.Error("rejected token should be removed")
	}
	if tokens.Clears != 1 {
		t.Errorf("token cleared %d times, want exactly 1", tokens.Clears)
	}
	if s.User() != nil {
		t.Error("user should be nil after rejection")
	}

	// A second resolve with no token must not clear again.
	s.Resolve(context.Background())
	if tokens.Clears != 1 {
		t.Errorf("token cleared %d times after re-resolve, want still 1", tokens.Clears)
	}
}

func TestResolveTransientErrorKeepsToken(t *testing.T) {
	tokens := NewMemTokenStore("good-token")
	s := NewStore(tokens, &fakeIdentity{err: errors.New("connection refused")})

	if got := s.Resolve(context.Background()); got != StateAnonymous {
		t.Fatalf("Resolve = %v, want anonymous", got)
	}
	if tokens.Token() != "good-token" {
		t.Error("transient failure must not discard the token")
	}
	if tokens.Clears != 0 {
		t.Errorf("token cleared %d times on transient failure, want 0", tokens.Clears)
	}
}

func TestEstablishThenLogout(t *testing.T) {
	tokens := NewMemTokenStore("")
	id := &fakeIdentity{user: &domain.User{Email: "user@test.com"}}
	s := NewStore(tokens, id)

	st, err := s.Establish(context.Background(), "issued-token")
	if err != nil {
		t.Fatalf("Establish() error: %v", err)
	}
	if st != StateAuthenticated {
		t.Fatalf("state after Establish = %v, want authenticated", st)
	}
	if tokens.Token() != "issued-token" {
		t.Error("Establish should persist the token")
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout() error: %v", err)
	}
	if s.State() != StateAnonymous {
		t.Errorf("state after Logout = %v, want anonymous", s.State())
	}
	if tokens.Token() != "" {
		t.Error("Logout should remove the persisted token")
	}
	if s.User() != nil {
		t.Error("Logout should drop the cached user")
	}
}

func TestSetUserIgnoredWhenNotAuthenticated(t *testing.T) {
	s := NewStore(NewMemTokenStore(""), &fakeIdentity{})
	s.Resolve(context.Background()) // anonymous
	s.SetUser(&domain.User{Email: "ghost@test.com"})
	if s.User() != nil {
		t.Error("SetUser should be ignored outside Authenticated")
	}
}

func TestExpiryHint(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user@test.com",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatal(err)
	}

	s := NewStore(NewMemTokenStore(signed), &fakeIdentity{})
	got, ok := s.ExpiryHint()
	if !ok {
		t.Fatal("expected an expiry hint")
	}
	if !got.Equal(exp) {
		t.Errorf("ExpiryHint = %v, want %v", got, exp)
	}
}

func TestExpiryHintOpaqueToken(t *testing.T) {
	s := NewStore(NewMemTokenStore("not-a-jwt"), &fakeIdentity{})
	if _, ok := s.ExpiryHint(); ok {
		t.Error("opaque token should yield no hint")
	}
}

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := t.TempDir() + "/token"
	s := NewFileTokenStore(path)

	if got := s.Token(); got != "" {
		t.Errorf("Token() on missing file = %q, want empty", got)
	}
	if err := s.Save("abc123\n"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if got := s.Token(); got != "abc123" {
		t.Errorf("Token() = %q, want trimmed abc123", got)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if got := s.Token(); got != "" {
		t.Errorf("Token() after Clear = %q, want empty", got)
	}
	// Clearing twice is fine.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear() error: %v", err)
	}
}
