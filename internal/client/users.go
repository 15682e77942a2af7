package client

import (
	"context"
	"fmt"

	"github.com/humas-io/uadmin/internal/http"
	"github.com/humas-io/uadmin/pkg/uadmin"
)

// UsersClient implements uadmin.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// List implements uadmin.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, query uadmin.ListQuery) (*uadmin.UserPage, error) {
	resp, err := c.httpClient.Get(ctx, "/users", query.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", withFallback(err, "failed to load users"))
	}

	if err := uadmin.EnvelopeError(resp.Body); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	page, err := uadmin.DecodePage(resp.Body, uadmin.DecodeJSON[uadmin.User])
	if err != nil {
		return nil, fmt.Errorf("parsing users list response: %w", err)
	}

	return page, nil
}

// Get implements uadmin.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id string) (*uadmin.User, error) {
	if id == "" {
		return nil, uadmin.ErrUserIDRequired
	}

	resp, err := c.httpClient.Get(ctx, "/users/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", withFallback(err, "failed to load user"))
	}

	envelope := uadmin.DecodeEnvelope(resp.Body, uadmin.DecodeJSON[uadmin.User])
	if err := envelope.Err(); err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return envelope.Data, nil
}

// Create implements uadmin.UsersClient.Create. The returned map is the
// server's created-record payload, whose exact shape varies by
// deployment.
func (c *UsersClient) Create(ctx context.Context, request *uadmin.UserCreateRequest) (map[string]any, error) {
	resp, err := c.httpClient.Post(ctx, "/users", request)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", withFallback(err, "failed to create user"))
	}

	envelope := uadmin.DecodeEnvelope(resp.Body, uadmin.DecodeJSON[map[string]any])
	if err := envelope.Err(); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return *envelope.Data, nil
}

// Update implements uadmin.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, id string, request *uadmin.UserUpdateRequest) error {
	if id == "" {
		return uadmin.ErrUserIDRequired
	}

	resp, err := c.httpClient.Put(ctx, "/users/"+id, request)
	if err != nil {
		return fmt.Errorf("updating user: %w", withFallback(err, "failed to update user"))
	}

	if err := uadmin.EnvelopeError(resp.Body); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

// Delete implements uadmin.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return uadmin.ErrUserIDRequired
	}

	resp, err := c.httpClient.Delete(ctx, "/users/"+id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", withFallback(err, "failed to delete user"))
	}

	if err := uadmin.EnvelopeError(resp.Body); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

// ResetPassword implements uadmin.UsersClient.ResetPassword. The
// returned map carries the reset result, typically the generated
// credential.
func (c *UsersClient) ResetPassword(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, uadmin.ErrUserIDRequired
	}

	resp, err := c.httpClient.Post(ctx, "/users/"+id+"/reset-password", nil)
	if err != nil {
		return nil, fmt.Errorf("resetting password: %w", withFallback(err, "failed to reset password"))
	}

	envelope := uadmin.DecodeEnvelope(resp.Body, uadmin.DecodeJSON[map[string]any])
	if err := envelope.Err(); err != nil {
		return nil, fmt.Errorf("resetting password: %w", err)
	}

	return *envelope.Data, nil
}
