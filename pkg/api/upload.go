package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"adminctl/pkg/models"
)

// UploadFile pairs a filename with its content for a multipart upload.
type UploadFile struct {
	Name   string
	Reader io.Reader
}

// UploadSingle posts one file to /api/uploads/single under the form field
// "file" and returns the stored-file metadata. The file either uploads
// completely or the whole operation fails; there is no chunking or resume.
func (c *Client) UploadSingle(ctx context.Context, name string, r io.Reader) (models.StoredFile, error) {
	var out struct {
		File models.StoredFile `json:"file"`
	}
	err := c.doMultipart(ctx, "/api/uploads/single", []formFile{{field: "file", name: name, reader: r}}, &out)
	if err != nil {
		return models.StoredFile{}, err
	}
	return out.File, nil
}

// UploadMultiple posts all files in one multipart request to
// /api/uploads/multiple under the repeated form field "files".
func (c *Client) UploadMultiple(ctx context.Context, files []UploadFile) ([]models.StoredFile, error) {
	parts := make([]formFile, 0, len(files))
	for _, f := range files {
		parts = append(parts, formFile{field: "files", name: f.Name, reader: f.Reader})
	}
	var out struct {
		Files []models.StoredFile `json:"files"`
	}
	if err := c.doMultipart(ctx, "/api/uploads/multiple", parts, &out); err != nil {
		return nil, err
	}
	return out.Files, nil
}

type formFile struct {
	field  string
	name   string
	reader io.Reader
}

func (c *Client) doMultipart(ctx context.Context, path string, files []formFile, target any) error {
	op := fmt.Sprintf("POST %s", path)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		if err != nil {
			return fmt.Errorf("%s: build form: %w", op, err)
		}
		if _, err := io.Copy(part, f.reader); err != nil {
			return fmt.Errorf("%s: read %q: %w", op, f.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%s: build form: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	for k, vs := range c.header {
		req.Header[k] = vs
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("path", path).Err(err).Msg("upload failed")
		return &TransportError{Op: op, Err: err}
	}
	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("upload")
	return c.decode(resp, op, "upload", "", target)
}
