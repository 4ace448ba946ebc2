package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/connectify/connectify/internal/session"
	"github.com/connectify/connectify/pkg/domain"
)

// stubIdentity resolves to a fixed user, or to a 401-free transport
// error when user is nil.
type stubIdentity struct {
	user *domain.User
}

func (s stubIdentity) GetMe(ctx context.Context) (*domain.User, error) {
	if s.user == nil {
		return nil, context.DeadlineExceeded
	}
	return s.user, nil
}

func testUser(admin bool) *domain.User {
	u := &domain.User{
		UserID:   uuid.New(),
		Email:    "shopper@example.com",
		Fullname: "Test Shopper",
		Type:     domain.TypeUser,
	}
	if admin {
		u.Type = domain.TypeAdmin
	}
	return u
}

// testServices builds a Services whose session is already resolved.
// user nil means anonymous (no token).
func testServices(user *domain.User) *Services {
	token := ""
	if user != nil {
		token = "tok-test"
	}
	sess := session.NewStore(session.NewMemTokenStore(token), stubIdentity{user: user})
	sess.Resolve(context.Background())
	return &Services{Session: sess}
}

func newTestApp(user *domain.User) App {
	a := NewApp(testServices(user), "test")
	a.width = 80
	a.height = 30
	return a
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func keyTab() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyTab}
}

func keyCtrlS() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyCtrlS}
}

func TestAppTabSwitchingAuthenticated(t *testing.T) {
	tests := []struct {
		key      string
		wantView view
	}{
		{"1", viewShop},
		{"2", viewCart},
		{"3", viewOrders},
		{"4", viewProfile},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			app := newTestApp(testUser(false))
			model, _ := app.Update(key(tc.key))
			a := model.(App)
			if a.view != tc.wantView {
				t.Errorf("after key %q: expected view=%d, got %d", tc.key, tc.wantView, a.view)
			}
		})
	}
}

func TestAppAnonymousProtectedTabRedirectsToLogin(t *testing.T) {
	app := newTestApp(nil)
	model, _ := app.Update(key("2"))
	a := model.(App)
	if a.view != viewLogin {
		t.Fatalf("expected login view, got %d", a.view)
	}
	if a.pending != viewCart {
		t.Errorf("expected pending=viewCart, got %d", a.pending)
	}
}

func TestAppNonAdminAdminTabRedirectsHome(t *testing.T) {
	app := newTestApp(testUser(false))
	app.view = viewOrders
	model, _ := app.Update(key("5"))
	a := model.(App)
	if a.view != viewShop {
		t.Errorf("expected shop view after redirect, got %d", a.view)
	}
	if a.status == "" {
		t.Error("expected a status message explaining the redirect")
	}
}

func TestAppAdminCanOpenAdminTab(t *testing.T) {
	app := newTestApp(testUser(true))
	model, _ := app.Update(key("5"))
	a := model.(App)
	if a.view != viewAdmin {
		t.Errorf("expected admin view, got %d", a.view)
	}
}

func TestAppLoginReturnsToPendingView(t *testing.T) {
	// Anonymous user asks for Orders, gets the login view.
	app := newTestApp(nil)
	model, _ := app.Update(key("3"))
	a := model.(App)
	if a.view != viewLogin || a.pending != viewOrders {
		t.Fatalf("expected login with pending orders, got view=%d pending=%d", a.view, a.pending)
	}

	// The session becomes authenticated and login succeeds.
	user := testUser(false)
	a.svc.Session = newAuthedStore(t, user)
	model, _ = a.Update(loggedInMsg{})
	a = model.(App)
	if a.view != viewOrders {
		t.Errorf("expected to land on orders after login, got %d", a.view)
	}
	if a.pending != viewNone {
		t.Errorf("pending view not cleared: %d", a.pending)
	}
}

func TestAppLoginEscReturnsToShop(t *testing.T) {
	app := newTestApp(nil)
	model, _ := app.Update(key("2"))
	a := model.(App)
	if a.view != viewLogin {
		t.Fatalf("expected login view, got %d", a.view)
	}

	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(App)
	if cmd == nil {
		t.Fatal("expected a command from esc on the login form")
	}
	model, _ = a.Update(cmd())
	a = model.(App)
	if a.view != viewShop {
		t.Errorf("expected shop view after backing out, got %d", a.view)
	}
	if a.pending != viewNone {
		t.Errorf("pending view not cleared: %d", a.pending)
	}
}

func newAuthedStore(t *testing.T, user *domain.User) *session.Store {
	t.Helper()
	sess := session.NewStore(session.NewMemTokenStore("tok-test"), stubIdentity{user: user})
	if st := sess.Resolve(context.Background()); st != session.StateAuthenticated {
		t.Fatalf("expected authenticated store, got %v", st)
	}
	return sess
}

func TestAppViewShowsIdentityLine(t *testing.T) {
	app := newTestApp(testUser(true))
	view := app.View()
	if !strings.Contains(view, "shopper@example.com") {
		t.Errorf("expected identity email in header, got:\n%s", view)
	}
	if !strings.Contains(view, "admin") {
		t.Errorf("expected admin badge in header, got:\n%s", view)
	}
}

func TestAppAnonymousViewSuggestsLogin(t *testing.T) {
	app := newTestApp(nil)
	view := app.View()
	if !strings.Contains(view, "not logged in") {
		t.Errorf("expected login hint in header, got:\n%s", view)
	}
}

func TestAppHelpOverlay(t *testing.T) {
	app := newTestApp(nil)
	model, _ := app.Update(key("?"))
	a := model.(App)
	if !a.helpOpen {
		t.Fatal("expected help overlay open")
	}
	if !strings.Contains(a.View(), "connectify login") {
		t.Error("expected command list in help overlay")
	}
	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(App)
	if a.helpOpen {
		t.Error("expected help overlay closed after esc")
	}
}

func TestAppFlashMessageShownInStatusLine(t *testing.T) {
	app := newTestApp(testUser(false))
	model, _ := app.Update(flashMsg{text: "saved", isErr: false})
	a := model.(App)
	if !strings.Contains(a.View(), "saved") {
		t.Error("expected flash text in status line")
	}
}

func TestFormatTimeRecent(t *testing.T) {
	if got := formatTime(time.Now().Add(-30 * time.Second)); got != "just now" {
		t.Errorf("formatTime = %q, want 'just now'", got)
	}
}
