package facade

import (
	"context"

	"github.com/google/uuid"

	"github.com/connectify/connectify/internal/session"
	"github.com/connectify/connectify/pkg/client"
	"github.com/connectify/connectify/pkg/domain"
)

// Catalog serves the product list for the storefront and the product
// CRUD for the admin console. Reads are public, writes re-verify the
// admin role before any request reaches a privileged endpoint.
type Catalog struct {
	api      *client.Client
	identity session.Identity
}

// NewCatalog creates the catalog facade.
func NewCatalog(api *client.Client, identity session.Identity) *Catalog {
	return &Catalog{api: api, identity: identity}
}

// List fetches every product. Search, filtering, and sorting happen
// client-side on the returned slice.
func (f *Catalog) List(ctx context.Context) Result[[]domain.Electronic] {
	items, err := f.api.ListElectronics(ctx)
	if err != nil {
		return failFrom[[]domain.Electronic](err, "could not load products")
	}
	return ok(items)
}

// Get fetches one product with its brand and category populated.
func (f *Catalog) Get(ctx context.Context, id uuid.UUID) Result[*domain.Electronic] {
	item, err := f.api.GetElectronic(ctx, id)
	if err != nil {
		return failFrom[*domain.Electronic](err, "could not load the product")
	}
	return ok(item)
}

// ProductInput is the admin product form.
type ProductInput struct {
	Name        string    `validate:"required"`
	Price       int64     `validate:"gt=0"`
	Stock       int       `validate:"gte=0"`
	Image       string    `validate:"omitempty,url"`
	Description string
	BrandID     uuid.UUID `validate:"required"`
	CategoryID  uuid.UUID `validate:"required"`
}

func (in ProductInput) request() client.ElectronicRequest {
	return client.ElectronicRequest{
		Name:        in.Name,
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       in.Image,
		Description: in.Description,
		BrandID:     in.BrandID,
		CategoryID:  in.CategoryID,
	}
}

// Create adds a product. Admin only.
func (f *Catalog) Create(ctx context.Context, in ProductInput) Result[*domain.Electronic] {
	if err := validate.Struct(in); err != nil {
		return fail[*domain.Electronic](msgInvalid)
	}
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[*domain.Electronic](msg)
	}
	created, err := f.api.CreateElectronic(ctx, in.request())
	if err != nil {
		return failFrom[*domain.Electronic](err, "could not create the product")
	}
	return ok(created)
}

// Update replaces a product's fields. Admin only.
func (f *Catalog) Update(ctx context.Context, id uuid.UUID, in ProductInput) Result[Done] {
	if err := validate.Struct(in); err != nil {
		return fail[Done](msgInvalid)
	}
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[Done](msg)
	}
	if err := f.api.UpdateElectronic(ctx, id, in.request()); err != nil {
		return failFrom[Done](err, "could not update the product")
	}
	return ok(Done{})
}

// Delete removes a product. Admin only.
func (f *Catalog) Delete(ctx context.Context, id uuid.UUID) Result[Done] {
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[Done](msg)
	}
	if err := f.api.DeleteElectronic(ctx, id); err != nil {
		return failFrom[Done](err, "could not delete the product")
	}
	return ok(Done{})
}
