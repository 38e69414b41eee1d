package api

import (
	"context"
	"fmt"
	"net/http"

	"adminctl/pkg/models"
)

// Resource is a typed accessor for one resource kind. R is the record type,
// C the create payload, and U the partial update payload. All kinds share the
// same REST contract, so the three accessors on Client are instantiations of
// this one type.
type Resource[R any, C any, U any] struct {
	client *Client
	base   string
	name   string
}

func newResource[R any, C any, U any](c *Client, base, name string) *Resource[R, C, U] {
	return &Resource[R, C, U]{client: c, base: base, name: name}
}

// Name returns the singular resource name, e.g. "user".
func (r *Resource[R, C, U]) Name() string { return r.name }

// List fetches the full collection. The server does not paginate; windowing
// over the result is the caller's concern.
func (r *Resource[R, C, U]) List(ctx context.Context) ([]R, error) {
	resp, err := r.client.do(ctx, http.MethodGet, r.base, nil)
	if err != nil {
		return nil, err
	}
	var out []R
	if err := r.client.decode(resp, "list "+r.name+"s", r.name, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single record by id.
func (r *Resource[R, C, U]) Get(ctx context.Context, id int64) (R, error) {
	var out R
	path := fmt.Sprintf("%s/%d", r.base, id)
	resp, err := r.client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return out, err
	}
	if err := r.client.decode(resp, "get "+r.name, r.name, fmt.Sprint(id), &out); err != nil {
		return out, err
	}
	return out, nil
}

// Create posts a new record and returns it with its server-assigned id.
func (r *Resource[R, C, U]) Create(ctx context.Context, payload C) (R, error) {
	var out R
	resp, err := r.client.do(ctx, http.MethodPost, r.base, payload)
	if err != nil {
		return out, err
	}
	if err := r.client.decode(resp, "create "+r.name, r.name, "", &out); err != nil {
		return out, err
	}
	return out, nil
}

// Update applies a partial payload to an existing record and returns the
// updated record. Unset payload fields are left untouched by the server.
func (r *Resource[R, C, U]) Update(ctx context.Context, id int64, payload U) (R, error) {
	var out R
	path := fmt.Sprintf("%s/%d", r.base, id)
	resp, err := r.client.do(ctx, http.MethodPut, path, payload)
	if err != nil {
		return out, err
	}
	if err := r.client.decode(resp, "update "+r.name, r.name, fmt.Sprint(id), &out); err != nil {
		return out, err
	}
	return out, nil
}

// Delete removes a record. Deleting an id that no longer exists surfaces a
// *NotFoundError; the operation is not idempotent from the caller's view.
func (r *Resource[R, C, U]) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", r.base, id)
	resp, err := r.client.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return r.client.decode(resp, "delete "+r.name, r.name, fmt.Sprint(id), nil)
}

// Users returns the accessor for user records.
func (c *Client) Users() *Resource[models.User, models.CreateUser, models.UpdateUser] {
	return newResource[models.User, models.CreateUser, models.UpdateUser](c, "/api/users", "user")
}

// Roles returns the accessor for role records.
func (c *Client) Roles() *Resource[models.Role, models.CreateRole, models.UpdateRole] {
	return newResource[models.Role, models.CreateRole, models.UpdateRole](c, "/api/roles", "role")
}

// Products returns the accessor for product records.
func (c *Client) Products() *Resource[models.Product, models.CreateProduct, models.UpdateProduct] {
	return newResource[models.Product, models.CreateProduct, models.UpdateProduct](c, "/api/products", "product")
}
