package client_test

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humas-io/uadmin/internal/client"
	"github.com/humas-io/uadmin/pkg/uadmin"
)

func newTestClient(t *testing.T, handler nethttp.HandlerFunc) (*client.Client, func()) {
	t.Helper()

	server := httptest.NewServer(handler)

	apiClient, err := client.New(&uadmin.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	return apiClient, server.Close
}

func TestNew_RequiresEndpoint(t *testing.T) {
	t.Parallel()

	_, err := client.New(&uadmin.Config{})

	require.ErrorIs(t, err, uadmin.ErrAPIEndpointRequired)
}

func TestUsersClient_List(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		assert.Equal(t, "ana", r.URL.Query().Get("search"))

		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": [
				{"id": "1", "username": "ana", "is_active": true},
				{"id": "2", "username": "anang", "is_active": false}
			],
			"page": 2,
			"per_page": 10,
			"total": 25,
			"total_pages": 3
		}`))
	})
	defer cleanup()

	page, err := apiClient.Users().List(context.Background(), uadmin.ListQuery{Page: 2, PerPage: 10, Search: "ana"})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "ana", page.Items[0].Username)
	assert.True(t, page.Items[0].Active)
	assert.Equal(t, 25, page.Total)
	assert.True(t, page.HasNextPage)
	assert.True(t, page.HasPreviousPage)
}

func TestUsersClient_List_NestedPaginationMetadata(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": [{"id": "1", "username": "ana"}],
			"pagination": {"page": "3", "per_page": "20", "total": "41", "total_pages": "3"}
		}`))
	})
	defer cleanup()

	page, err := apiClient.Users().List(context.Background(), uadmin.NewListQuery())

	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 20, page.PerPage)
	assert.Equal(t, 41, page.Total)
	assert.False(t, page.HasNextPage)
}

func TestUsersClient_List_EnvelopeFailure(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		// 200 with an error envelope, as some deployments do.
		_, _ = w.Write([]byte(`{"status": "error", "message": "search term too short"}`))
	})
	defer cleanup()

	_, err := apiClient.Users().List(context.Background(), uadmin.NewListQuery())

	require.Error(t, err)

	apiErr := &uadmin.APIError{}
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "search term too short", apiErr.Message)
}

func TestUsersClient_List_TransportFailureGetsFallbackMessage(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusForbidden)
		_, _ = w.Write([]byte(`{}`))
	})
	defer cleanup()

	_, err := apiClient.Users().List(context.Background(), uadmin.NewListQuery())

	require.Error(t, err)

	apiErr := &uadmin.APIError{}
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "failed to load users", apiErr.Message)
	assert.Equal(t, nethttp.StatusForbidden, apiErr.StatusCode)
}

func TestUsersClient_Get(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/users/7", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {"id": "7", "username": "ana", "email": "ana@example.com", "role_name": "admin"}
		}`))
	})
	defer cleanup()

	user, err := apiClient.Users().Get(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, "7", user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "admin", user.RoleName)
}

func TestUsersClient_Get_EmptyID(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		t.Error("no request expected for an empty ID")
	})
	defer cleanup()

	_, err := apiClient.Users().Get(context.Background(), "")

	require.ErrorIs(t, err, uadmin.ErrUserIDRequired)
}

func TestUsersClient_Create(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "budi", payload["username"])

		w.WriteHeader(nethttp.StatusCreated)
		_, _ = w.Write([]byte(`{"status": "success", "data": {"id": "12", "username": "budi"}}`))
	})
	defer cleanup()

	result, err := apiClient.Users().Create(context.Background(), &uadmin.UserCreateRequest{
		Username: "budi",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "12", result["id"])
}

func TestUsersClient_Update_PartialBody(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPut, r.Method)
		assert.Equal(t, "/users/7", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "new@example.com", payload["email"])
		assert.NotContains(t, payload, "username", "unset fields must be omitted")

		_, _ = w.Write([]byte(`{"status": "success"}`))
	})
	defer cleanup()

	email := "new@example.com"
	err := apiClient.Users().Update(context.Background(), "7", &uadmin.UserUpdateRequest{Email: &email})

	require.NoError(t, err)
}

func TestUsersClient_Delete(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodDelete, r.Method)
		assert.Equal(t, "/users/7", r.URL.Path)

		_, _ = w.Write([]byte(`{"status": "success"}`))
	})
	defer cleanup()

	require.NoError(t, apiClient.Users().Delete(context.Background(), "7"))
}

func TestUsersClient_ResetPassword(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/users/7/reset-password", r.URL.Path)

		_, _ = w.Write([]byte(`{"status": "success", "data": {"new_password": "s3cr3t"}}`))
	})
	defer cleanup()

	result, err := apiClient.Users().ResetPassword(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", result["new_password"])
}
