package facade

import (
	"context"

	"github.com/google/uuid"

	"github.com/connectify/connectify/internal/session"
	"github.com/connectify/connectify/pkg/client"
	"github.com/connectify/connectify/pkg/domain"
)

// Users is the admin account console. Every operation re-verifies the
// admin role first.
type Users struct {
	api      *client.Client
	identity session.Identity
}

func NewUsers(api *client.Client, identity session.Identity) *Users {
	return &Users{api: api, identity: identity}
}

// List fetches every account. Admin only.
func (f *Users) List(ctx context.Context) Result[[]domain.User] {
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[[]domain.User](msg)
	}
	users, err := f.api.ListUsers(ctx)
	if err != nil {
		return failFrom[[]domain.User](err, "could not load users")
	}
	return ok(users)
}

// UserInput is the admin account form.
type UserInput struct {
	Email       string `validate:"required,email"`
	Fullname    string `validate:"required"`
	Phonenumber string `validate:"required"`
	Type        string `validate:"required,oneof=user admin"`
	Password    string `validate:"omitempty,min=6"`
}

func (in UserInput) request() client.UserRequest {
	return client.UserRequest{
		Email:       in.Email,
		Fullname:    in.Fullname,
		Phonenumber: in.Phonenumber,
		Type:        in.Type,
		Password:    in.Password,
	}
}

// Create adds an account. Admin only. Password is required here even
// though updates may leave it empty.
func (f *Users) Create(ctx context.Context, in UserInput) Result[*domain.User] {
	if err := validate.Struct(in); err != nil || in.Password == "" {
		return fail[*domain.User](msgInvalid)
	}
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[*domain.User](msg)
	}
	created, err := f.api.CreateUser(ctx, in.request())
	if err != nil {
		return failFrom[*domain.User](err, "could not create the user")
	}
	return ok(created)
}

// Update edits an account. Admin only. An empty password leaves the
// current one in place.
func (f *Users) Update(ctx context.Context, id uuid.UUID, in UserInput) Result[Done] {
	if err := validate.Struct(in); err != nil {
		return fail[Done](msgInvalid)
	}
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[Done](msg)
	}
	if err := f.api.UpdateUser(ctx, id, in.request()); err != nil {
		return failFrom[Done](err, "could not update the user")
	}
	return ok(Done{})
}

// Delete removes an account. Admin only.
func (f *Users) Delete(ctx context.Context, id uuid.UUID) Result[Done] {
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[Done](msg)
	}
	if err := f.api.DeleteUser(ctx, id); err != nil {
		return failFrom[Done](err, "could not delete the user")
	}
	return ok(Done{})
}
