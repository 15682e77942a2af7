package client_test

import (
	"context"
	nethttp "net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humas-io/uadmin/pkg/uadmin"
)

func TestAuditLogsClient_List(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/audit-logs", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("user_id"))
		assert.Equal(t, "login", r.URL.Query().Get("action"))

		// Mixed timestamp formats, as audit backends tend to produce.
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": [
				{"id": "100", "user_id": "7", "action": "login", "created_at": "2024-01-15T10:00:00Z"},
				{"id": "101", "user_id": "7", "action": "login", "created_at": 1705312800000}
			],
			"page": 1,
			"per_page": 10,
			"total": 2,
			"total_pages": 1
		}`))
	})
	defer cleanup()

	page, err := apiClient.AuditLogs().List(context.Background(), uadmin.AuditLogQuery{
		Page:    1,
		PerPage: 10,
		UserID:  "7",
		Action:  "login",
	})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.True(t, page.Items[0].CreatedAt.Equal(want))
	assert.True(t, page.Items[1].CreatedAt.Equal(want), "epoch milliseconds must decode to the same instant")
	assert.False(t, page.HasNextPage)
}

func TestAuditLogsClient_List_UnparseableTimestampIsZero(t *testing.T) {
	t.Parallel()

	apiClient, cleanup := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": [{"id": "100", "action": "login", "created_at": "yesterday-ish"}],
			"page": 1, "per_page": 10, "total": 1, "total_pages": 1
		}`))
	})
	defer cleanup()

	page, err := apiClient.AuditLogs().List(context.Background(), uadmin.AuditLogQuery{Page: 1, PerPage: 10})

	require.NoError(t, err, "a bad timestamp must not fail the whole page")
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].CreatedAt.IsZero())
}
