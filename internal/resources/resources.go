// Package resources binds the concrete resource kinds to the generic
// list-view controller: one descriptor per kind plus the draft-to-payload
// builders used on submit.
package resources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"adminctl/pkg/api"
	"adminctl/pkg/listview"
	"adminctl/pkg/models"
)

// Form field names shared by create and edit drafts.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldImage       = "image"
)

// Users returns the capability set for the user list screen.
func Users() listview.Descriptor[models.User] {
	return listview.Descriptor[models.User]{
		Name:        "user",
		Title:       "User Management",
		ID:          models.User.Key,
		DisplayName: models.User.DisplayName,
		Fields: []listview.Field{
			{Name: FieldName, Label: "User name", Kind: listview.FieldText, Required: true},
		},
		FillDraft: func(u models.User) listview.Draft {
			return listview.Draft{FieldName: u.Name}
		},
	}
}

// Roles returns the capability set for the role list screen.
func Roles() listview.Descriptor[models.Role] {
	return listview.Descriptor[models.Role]{
		Name:        "role",
		Title:       "Role Management",
		ID:          models.Role.Key,
		DisplayName: models.Role.DisplayName,
		Fields: []listview.Field{
			{Name: FieldName, Label: "Role name", Kind: listview.FieldText, Required: true},
			{Name: FieldDescription, Label: "Description", Kind: listview.FieldText},
		},
		FillDraft: func(r models.Role) listview.Draft {
			return listview.Draft{
				FieldName:        r.Name,
				FieldDescription: r.Description,
			}
		},
	}
}

// Products returns the capability set for the product list screen.
func Products() listview.Descriptor[models.Product] {
	return listview.Descriptor[models.Product]{
		Name:        "product",
		Title:       "Product Management",
		ID:          models.Product.Key,
		DisplayName: models.Product.DisplayName,
		Fields: []listview.Field{
			{Name: FieldName, Label: "Product name", Kind: listview.FieldText, Required: true},
			{Name: FieldPrice, Label: "Price", Kind: listview.FieldNumber, Required: true},
			{Name: FieldDescription, Label: "Description", Kind: listview.FieldText},
			{Name: FieldImage, Label: "Image file", Kind: listview.FieldFile},
		},
		FillDraft: func(p models.Product) listview.Draft {
			return listview.Draft{
				FieldName:        p.Name,
				FieldPrice:       strconv.FormatInt(p.Price, 10),
				FieldDescription: p.Description,
			}
		},
	}
}

// UserCreate builds the create payload from a validated draft.
func UserCreate(d listview.Draft) models.CreateUser {
	return models.CreateUser{Name: d.Get(FieldName)}
}

// UserUpdate builds the partial update payload. Every form field is sent;
// the form tracks full replacements, not field-level diffs.
func UserUpdate(d listview.Draft) models.UpdateUser {
	name := d.Get(FieldName)
	return models.UpdateUser{Name: &name}
}

// RoleCreate builds the create payload from a validated draft.
func RoleCreate(d listview.Draft) models.CreateRole {
	return models.CreateRole{
		Name:        d.Get(FieldName),
		Description: d.Get(FieldDescription),
	}
}

// RoleUpdate builds the partial update payload.
func RoleUpdate(d listview.Draft) models.UpdateRole {
	name := d.Get(FieldName)
	desc := d.Get(FieldDescription)
	return models.UpdateRole{Name: &name, Description: &desc}
}

// ProductCreate builds the create payload, uploading the draft's image file
// first when one is set and attaching the stored path.
func ProductCreate(ctx context.Context, c *api.Client, d listview.Draft) (models.CreateProduct, error) {
	imagePath, err := uploadImage(ctx, c, d.Get(FieldImage))
	if err != nil {
		return models.CreateProduct{}, err
	}
	return models.CreateProduct{
		Name:        d.Get(FieldName),
		Price:       price(d),
		Description: d.Get(FieldDescription),
		ImagePath:   imagePath,
	}, nil
}

// ProductUpdate builds the partial update payload, uploading the draft's
// image file first when one is set.
func ProductUpdate(ctx context.Context, c *api.Client, d listview.Draft) (models.UpdateProduct, error) {
	name := d.Get(FieldName)
	p := price(d)
	desc := d.Get(FieldDescription)
	out := models.UpdateProduct{Name: &name, Price: &p, Description: &desc}

	imagePath, err := uploadImage(ctx, c, d.Get(FieldImage))
	if err != nil {
		return models.UpdateProduct{}, err
	}
	if imagePath != "" {
		out.ImagePath = &imagePath
	}
	return out, nil
}

func price(d listview.Draft) int64 {
	// The draft passed schema validation, so this parses or is empty.
	n, _ := strconv.ParseInt(d.Get(FieldPrice), 10, 64)
	return n
}

func uploadImage(ctx context.Context, c *api.Client, localPath string) (string, error) {
	if localPath == "" {
		return "", nil
	}
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("opening image %q: %w", localPath, err)
	}
	defer f.Close()

	stored, err := c.UploadSingle(ctx, filepath.Base(localPath), f)
	if err != nil {
		return "", err
	}
	return stored.Path, nil
}
