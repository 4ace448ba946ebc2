package facade

import (
	"context"

	"github.com/google/uuid"

	"github.com/connectify/connectify/internal/session"
	"github.com/connectify/connectify/pkg/client"
	"github.com/connectify/connectify/pkg/domain"
)

// Categories serves category reads and the admin category CRUD.
type Categories struct {
	api      *client.Client
	identity session.Identity
}

func NewCategories(api *client.Client, identity session.Identity) *Categories {
	return &Categories{api: api, identity: identity}
}

// List fetches all categories.
func (f *Categories) List(ctx context.Context) Result[[]domain.Category] {
	cats, err := f.api.ListCategories(ctx)
	if err != nil {
		return failFrom[[]domain.Category](err, "could not load categories")
	}
	return ok(cats)
}

// Create adds a category. Admin only.
func (f *Categories) Create(ctx context.Context, name string) Result[*domain.Category] {
	if name == "" {
		return fail[*domain.Category](msgInvalid)
	}
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[*domain.Category](msg)
	}
	created, err := f.api.CreateCategory(ctx, name)
	if err != nil {
		return failFrom[*domain.Category](err, "could not create the category")
	}
	return ok(created)
}

// Update renames a category. Admin only.
func (f *Categories) Update(ctx context.Context, id uuid.UUID, name string) Result[Done] {
	if name == "" {
		return fail[Done](msgInvalid)
	}
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[Done](msg)
	}
	if err := f.api.UpdateCategory(ctx, id, name); err != nil {
		return failFrom[Done](err, "could not update the category")
	}
	return ok(Done{})
}

// Delete removes a category. Admin only.
func (f *Categories) Delete(ctx context.Context, id uuid.UUID) Result[Done] {
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[Done](msg)
	}
	if err := f.api.DeleteCategory(ctx, id); err != nil {
		return failFrom[Done](err, "could not delete the category")
	}
	return ok(Done{})
}
