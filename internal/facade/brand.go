package facade

import (
	"context"

	"github.com/google/uuid"

	"github.com/connectify/connectify/internal/session"
	"github.com/connectify/connectify/pkg/client"
	"github.com/connectify/connectify/pkg/domain"
)

// Brands serves brand reads for the storefront filters and brand CRUD
// for the admin console.
type Brands struct {
	api      *client.Client
	identity session.Identity
}

func NewBrands(api *client.Client, identity session.Identity) *Brands {
	return &Brands{api: api, identity: identity}
}

// List fetches all brands.
func (f *Brands) List(ctx context.Context) Result[[]domain.Brand] {
	brands, err := f.api.ListBrands(ctx)
	if err != nil {
		return failFrom[[]domain.Brand](err, "could not load brands")
	}
	return ok(brands)
}

// BrandInput is the admin brand form.
type BrandInput struct {
	Name  string `validate:"required"`
	Image string `validate:"omitempty,url"`
}

// Create adds a brand. Admin only.
func (f *Brands) Create(ctx context.Context, in BrandInput) Result[*domain.Brand] {
	if err := validate.Struct(in); err != nil {
		return fail[*domain.Brand](msgInvalid)
	}
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[*domain.Brand](msg)
	}
	created, err := f.api.CreateBrand(ctx, client.BrandRequest{Name: in.Name, Image: in.Image})
	if err != nil {
		return failFrom[*domain.Brand](err, "could not create the brand")
	}
	return ok(created)
}

// Update renames a brand or changes its image. Admin only.
func (f *Brands) Update(ctx context.Context, id uuid.UUID, in BrandInput) Result[Done] {
	if err := validate.Struct(in); err != nil {
		return fail[Done](msgInvalid)
	}
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[Done](msg)
	}
	if err := f.api.UpdateBrand(ctx, id, client.BrandRequest{Name: in.Name, Image: in.Image}); err != nil {
		return failFrom[Done](err, "could not update the brand")
	}
	return ok(Done{})
}

// Delete removes a brand. Admin only.
func (f *Brands) Delete(ctx context.Context, id uuid.UUID) Result[Done] {
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[Done](msg)
	}
	if err := f.api.DeleteBrand(ctx, id); err != nil {
		return failFrom[Done](err, "could not delete the brand")
	}
	return ok(Done{})
}
