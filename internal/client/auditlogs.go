package client

import (
	"context"
	"fmt"

	"github.com/humas-io/uadmin/internal/http"
	"github.com/humas-io/uadmin/pkg/uadmin"
)

// AuditLogsClient implements uadmin.AuditLogsClient.
type AuditLogsClient struct {
	httpClient *http.Client
}

// NewAuditLogsClient creates a new audit logs client.
func NewAuditLogsClient(httpClient *http.Client) *AuditLogsClient {
	return &AuditLogsClient{httpClient: httpClient}
}

// List implements uadmin.AuditLogsClient.List.
func (c *AuditLogsClient) List(ctx context.Context, query uadmin.AuditLogQuery) (*uadmin.AuditLogPage, error) {
	resp, err := c.httpClient.Get(ctx, "/audit-logs", query.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing audit logs: %w", withFallback(err, "failed to load audit logs"))
	}

	if err := uadmin.EnvelopeError(resp.Body); err != nil {
		return nil, fmt.Errorf("listing audit logs: %w", err)
	}

	page, err := uadmin.DecodePage(resp.Body, uadmin.DecodeJSON[uadmin.AuditLog])
	if err != nil {
		return nil, fmt.Errorf("parsing audit logs list response: %w", err)
	}

	return page, nil
}
