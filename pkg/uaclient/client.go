// Package uaclient provides the main entry point for creating
// user-management API clients.
package uaclient

import (
	"fmt"
	"strings"

	"github.com/humas-io/uadmin/internal/client"
	"github.com/humas-io/uadmin/pkg/uadmin"
)

// New creates a new API client. The endpoint is normalized by trimming
// a trailing slash and defaulting to https when no scheme is present.
func New(config *uadmin.Config) (uadmin.Client, error) {
	if config == nil || config.APIEndpoint == "" {
		return nil, uadmin.ErrAPIEndpointRequired
	}

	endpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.APIEndpoint = endpoint

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithEndpoint creates a new client with just an API endpoint (no auth).
func NewWithEndpoint(endpoint string) (uadmin.Client, error) {
	return New(&uadmin.Config{APIEndpoint: endpoint})
}

// NewWithToken creates a new client with an API endpoint and bearer token.
func NewWithToken(endpoint, token string) (uadmin.Client, error) {
	return New(&uadmin.Config{APIEndpoint: endpoint, Token: token})
}
