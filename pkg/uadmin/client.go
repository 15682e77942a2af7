package uadmin

import (
	"context"
	"time"
)

// UsersClient is the user-management resource contract consumed by the
// controller and the CLI.
type UsersClient interface {
	List(ctx context.Context, query ListQuery) (*UserPage, error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, request *UserCreateRequest) (map[string]any, error)
	Update(ctx context.Context, id string, request *UserUpdateRequest) error
	Delete(ctx context.Context, id string) error
	ResetPassword(ctx context.Context, id string) (map[string]any, error)
}

// RolesClient provides the role catalog used by the role filter.
type RolesClient interface {
	List(ctx context.Context) ([]Role, error)
}

// AuditLogsClient provides access to the audit trail.
type AuditLogsClient interface {
	List(ctx context.Context, query AuditLogQuery) (*AuditLogPage, error)
}

// Client provides access to all resource-specific clients.
type Client interface {
	Users() UsersClient
	Roles() RolesClient
	AuditLogs() AuditLogsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a uadmin.Client.
//
// Per-request timeouts should generally be controlled via the context
// passed to client methods; retry behavior can be tuned via RetryMax,
// RetryWaitMin and RetryWaitMax.
type Config struct {
	// APIEndpoint: base URL for the user-management API
	// (e.g. "https://api.example.com/api"). A trailing slash is trimmed.
	APIEndpoint string

	// Token: optional static bearer token sent on every request.
	Token string

	// RetryMax: maximum number of retries for transient failures
	// (>=500, 429, and connection errors). If 0, a default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
