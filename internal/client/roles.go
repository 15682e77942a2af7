package client

import (
	"context"
	"fmt"

	"github.com/humas-io/uadmin/internal/http"
	"github.com/humas-io/uadmin/pkg/uadmin"
)

// RolesClient implements uadmin.RolesClient.
type RolesClient struct {
	httpClient *http.Client
}

// NewRolesClient creates a new roles client.
func NewRolesClient(httpClient *http.Client) *RolesClient {
	return &RolesClient{httpClient: httpClient}
}

// List implements uadmin.RolesClient.List. The role catalog is small
// and unpaginated.
func (c *RolesClient) List(ctx context.Context) ([]uadmin.Role, error) {
	resp, err := c.httpClient.Get(ctx, "/roles", nil)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", withFallback(err, "failed to load roles"))
	}

	envelope := uadmin.DecodeEnvelope(resp.Body, uadmin.DecodeJSON[[]uadmin.Role])
	if err := envelope.Err(); err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}

	return *envelope.Data, nil
}
