// Package access decides whether a protected view may render for the
// current session. Decisions are pure functions of session state plus
// the view's declared requirement; they gate UI only, never real
// writes — those re-check identity server-side.
package access

import (
	"github.com/connectify/connectify/internal/session"
	"github.com/connectify/connectify/pkg/domain"
)

// Requirement is what a view demands of the session.
type Requirement int

const (
	// Public views render for anyone.
	Public Requirement = iota
	// Authenticated views need a confirmed login of any type.
	Authenticated
	// AdminOnly views additionally need the admin type.
	AdminOnly
)

// Decision is the outcome of a guard check.
type Decision int

const (
	// Allow: mount the view.
	Allow Decision = iota
	// Wait: identity not yet determined; render a neutral waiting
	// state instead of redirecting a user who may be logged in.
	Wait
	// RedirectToLogin: not logged in; send to the login view and
	// return to the requested view after success.
	RedirectToLogin
	// RedirectHome: logged in but not entitled; the view is never
	// mounted for them.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Wait:
		return "wait"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Decide evaluates the guard table for one navigation. user is the
// session's cached identity and may be nil outside Authenticated.
func Decide(state session.State, user *domain.User, req Requirement) Decision {
	if req == Public {
		return Allow
	}
	switch state {
	case session.StateUnresolved, session.StateResolving:
		return Wait
	case session.StateAnonymous:
		return RedirectToLogin
	case session.StateAuthenticated:
		if req == AdminOnly && !user.IsAdmin() {
			return RedirectHome
		}
		return Allow
	default:
		return RedirectToLogin
	}
}
