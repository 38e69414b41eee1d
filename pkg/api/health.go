package api

import (
	"context"
	"net/http"

	"adminctl/pkg/models"
)

// Health calls the root status probe.
func (c *Client) Health(ctx context.Context) (models.Health, error) {
	var out models.Health
	resp, err := c.do(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return out, err
	}
	if err := c.decode(resp, "GET /", "health", "", &out); err != nil {
		return out, err
	}
	return out, nil
}
