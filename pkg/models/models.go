// Package models defines the resource records exchanged with the admin API.
//
// Every record carries a server-assigned numeric identifier. Clients never
// choose or mutate identifiers; create payloads omit them entirely and update
// payloads address a record by id while carrying only the fields to change.
package models

import "strconv"

// User is an account record. It is the smallest resource variant: an
// identifier and a display name.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DisplayName returns the user's display name.
func (u User) DisplayName() string { return u.Name }

// Key returns the identifier in its wire form.
func (u User) Key() string { return strconv.FormatInt(u.ID, 10) }

// Role is a named permission grouping with an optional free-form description.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (r Role) DisplayName() string { return r.Name }

func (r Role) Key() string { return strconv.FormatInt(r.ID, 10) }

// Product is a catalog entry. Price is a non-negative amount in minor units.
// ImagePath, when present, is the server-relative path of an uploaded image.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	ImagePath   string `json:"img_path,omitempty"`
}

func (p Product) DisplayName() string { return p.Name }

func (p Product) Key() string { return strconv.FormatInt(p.ID, 10) }

// CreateUser is the payload for creating a user.
type CreateUser struct {
	Name string `json:"name"`
}

// UpdateUser is a partial update; nil fields are left untouched by the server.
type UpdateUser struct {
	Name *string `json:"name,omitempty"`
}

// CreateRole is the payload for creating a role.
type CreateRole struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateRole is a partial update; nil fields are left untouched by the server.
type UpdateRole struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateProduct is the payload for creating a product.
type CreateProduct struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	ImagePath   string `json:"img_path,omitempty"`
}

// UpdateProduct is a partial update; nil fields are left untouched by the server.
type UpdateProduct struct {
	Name        *string `json:"name,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Description *string `json:"description,omitempty"`
	ImagePath   *string `json:"img_path,omitempty"`
}

// StoredFile describes a persisted upload as reported by the server.
type StoredFile struct {
	Path        string `json:"path"`
	FileName    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Health is the response of the root status probe.
type Health struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
