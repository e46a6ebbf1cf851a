package client

import (
	"context"
	"net/http"
)

// Health pings GET /health. A 401 here says nothing about the session.
func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil, exemptFromForcedLogout())
}
