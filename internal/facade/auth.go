package facade

import (
	"context"

	"github.com/connectify/connectify/internal/session"
	"github.com/connectify/connectify/pkg/client"
	"github.com/connectify/connectify/pkg/domain"
)

// Auth handles login, signup, and the user's own profile. It is the
// only facade allowed to mutate persisted token state, which it does
// through the session store.
type Auth struct {
	api     *client.Client
	session *session.Store
}

// NewAuth creates the auth facade.
func NewAuth(api *client.Client, sess *session.Store) *Auth {
	return &Auth{api: api, session: sess}
}

// LoginInput is the login form.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login exchanges credentials for a token, persists it, and resolves
// the identity behind it.
func (a *Auth) Login(ctx context.Context, in LoginInput) Result[*domain.User] {
	if err := validate.Struct(in); err != nil {
		return fail[*domain.User](msgInvalid)
	}

	token, err := a.api.Login(ctx, in.Email, in.Password)
	if err != nil {
		return failFrom[*domain.User](err, "login failed")
	}

	state, err := a.session.Establish(ctx, token)
	if err != nil {
		return fail[*domain.User]("could not save session: " + err.Error())
	}
	if state != session.StateAuthenticated {
		return fail[*domain.User]("login succeeded but the session could not be verified")
	}
	return ok(a.session.User())
}

// SignupInput is the registration form.
type SignupInput struct {
	Email       string `validate:"required,email"`
	Fullname    string `validate:"required"`
	Phonenumber string `validate:"required"`
	Password    string `validate:"required,min=6"`
}

// Signup registers a new account. It does not log the user in.
func (a *Auth) Signup(ctx context.Context, in SignupInput) Result[Done] {
	if err := validate.Struct(in); err != nil {
		return fail[Done](msgInvalid)
	}
	if err := a.api.Signup(ctx, client.SignupRequest{
		Email:       in.Email,
		Fullname:    in.Fullname,
		Phonenumber: in.Phonenumber,
		Password:    in.Password,
	}); err != nil {
		return failFrom[Done](err, "signup failed")
	}
	return ok(Done{})
}

// Me re-resolves the session against the backend. A rejected token is
// discarded by the session store, exactly once.
func (a *Auth) Me(ctx context.Context) Result[*domain.User] {
	if a.session.Token() == "" {
		return fail[*domain.User](msgNotLoggedIn)
	}
	if st := a.session.Resolve(ctx); st != session.StateAuthenticated {
		return fail[*domain.User]("your session has expired, please log in again")
	}
	return ok(a.session.User())
}

// UpdateProfileInput carries the editable profile fields. Empty
// fields are left unchanged.
type UpdateProfileInput struct {
	Fullname    string
	Phonenumber string
	Password    string
}

// UpdateProfile updates the user's own profile, then refreshes the
// cached identity so the UI shows the new values.
func (a *Auth) UpdateProfile(ctx context.Context, in UpdateProfileInput) Result[*domain.User] {
	if a.session.Token() == "" {
		return fail[*domain.User](msgNotLoggedIn)
	}
	if in.Fullname == "" && in.Phonenumber == "" && in.Password == "" {
		return fail[*domain.User]("nothing to update")
	}
	if err := a.api.UpdateProfile(ctx, client.UpdateProfileRequest{
		Fullname:    in.Fullname,
		Phonenumber: in.Phonenumber,
		Password:    in.Password,
	}); err != nil {
		return failFrom[*domain.User](err, "profile update failed")
	}

	me, err := a.api.GetMe(ctx)
	if err != nil {
		return failFrom[*domain.User](err, "profile saved but could not be reloaded")
	}
	a.session.SetUser(me)
	return ok(me)
}

// Logout discards the session and the persisted token.
func (a *Auth) Logout() Result[Done] {
	if err := a.session.Logout(); err != nil {
		return fail[Done]("logout failed: " + err.Error())
	}
	return ok(Done{})
}
