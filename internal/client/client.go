// Package client implements the uadmin.Client interface and the
// resource clients behind it.
package client

import (
	"errors"

	"github.com/humas-io/uadmin/internal/http"
	"github.com/humas-io/uadmin/pkg/uadmin"
)

// Client implements the uadmin.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     uadmin.Logger

	users     uadmin.UsersClient
	roles     uadmin.RolesClient
	auditLogs uadmin.AuditLogsClient
}

// New creates a new API client from the given configuration.
func New(config *uadmin.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, uadmin.ErrAPIEndpointRequired
	}

	var tokens http.TokenProvider
	if config.Token != "" {
		tokens = http.StaticToken(config.Token)
	}

	httpClient := http.NewClient(config.APIEndpoint, tokens, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.APIEndpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *uadmin.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.httpClient)
	c.roles = NewRolesClient(c.httpClient)
	c.auditLogs = NewAuditLogsClient(c.httpClient)
}

// Users implements uadmin.Client.Users.
func (c *Client) Users() uadmin.UsersClient {
	return c.users
}

// Roles implements uadmin.Client.Roles.
func (c *Client) Roles() uadmin.RolesClient {
	return c.roles
}

// AuditLogs implements uadmin.Client.AuditLogs.
func (c *Client) AuditLogs() uadmin.AuditLogsClient {
	return c.auditLogs
}

// withFallback fills in an endpoint-specific default message on API
// errors whose body carried none.
func withFallback(err error, fallback string) error {
	apiErr := &uadmin.APIError{}
	if errors.As(err, &apiErr) && apiErr.Message == "" {
		apiErr.Message = fallback
	}

	return err
}

// loggerAdapter adapts uadmin.Logger to http.Logger.
type loggerAdapter struct {
	logger uadmin.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
