package uadmin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humas-io/uadmin/pkg/uadmin"
)

func TestNewPage_DerivedNavigationFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		page        int
		totalPages  int
		wantNext    bool
		wantPrev    bool
	}{
		{name: "first of several", page: 1, totalPages: 3, wantNext: true, wantPrev: false},
		{name: "middle", page: 2, totalPages: 3, wantNext: true, wantPrev: true},
		{name: "last", page: 3, totalPages: 3, wantNext: false, wantPrev: true},
		{name: "single page", page: 1, totalPages: 1, wantNext: false, wantPrev: false},
		{name: "empty collection", page: 1, totalPages: 0, wantNext: false, wantPrev: false},
		{name: "page beyond total", page: 5, totalPages: 3, wantNext: false, wantPrev: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			page := uadmin.NewPage([]string{}, testCase.page, 10, 0, testCase.totalPages)

			assert.Equal(t, testCase.wantNext, page.HasNextPage)
			assert.Equal(t, testCase.wantPrev, page.HasPreviousPage)
		})
	}
}

func TestDecodePage_TopLevelFields(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"status": "success",
		"data": [{"name":"ana"},{"name":"budi"}],
		"page": 2,
		"per_page": 2,
		"total": 5,
		"total_pages": 3
	}`)

	page, err := uadmin.DecodePage(body, uadmin.DecodeJSON[testRecord])
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, "ana", page.Items[0].Name)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.PerPage)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNextPage)
	assert.True(t, page.HasPreviousPage)
}

func TestDecodePage_NestedPaginationObject(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"data": [{"name":"ana"}],
		"pagination": {"page": 3, "per_page": 1, "total": 3, "total_pages": 3}
	}`)

	page, err := uadmin.DecodePage(body, uadmin.DecodeJSON[testRecord])
	require.NoError(t, err)

	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 1, page.PerPage)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.HasNextPage)
	assert.True(t, page.HasPreviousPage)
}

func TestDecodePage_TopLevelBeatsNested(t *testing.T) {
	t.Parallel()

	// Each field resolves independently; per_page only exists nested.
	body := []byte(`{
		"data": [],
		"page": 4,
		"pagination": {"page": 1, "per_page": 25, "total_pages": 9}
	}`)

	page, err := uadmin.DecodePage(body, uadmin.DecodeJSON[testRecord])
	require.NoError(t, err)

	assert.Equal(t, 4, page.Page)
	assert.Equal(t, 25, page.PerPage)
	assert.Equal(t, 9, page.TotalPages)
	assert.True(t, page.HasNextPage)
}

func TestDecodePage_DefaultsApplied(t *testing.T) {
	t.Parallel()

	page, err := uadmin.DecodePage([]byte(`{"status":"success"}`), uadmin.DecodeJSON[testRecord])
	require.NoError(t, err)

	assert.Equal(t, uadmin.StandardPageDefaults.Page, page.Page)
	assert.Equal(t, uadmin.StandardPageDefaults.PerPage, page.PerPage)
	assert.Equal(t, uadmin.StandardPageDefaults.Total, page.Total)
	assert.Equal(t, uadmin.StandardPageDefaults.TotalPages, page.TotalPages)
	assert.False(t, page.HasNextPage)
	assert.False(t, page.HasPreviousPage)
}

func TestDecodePage_CustomDefaultsPolicy(t *testing.T) {
	t.Parallel()

	defaults := uadmin.PageDefaults{Page: 1, PerPage: 50, Total: 0, TotalPages: 0}

	page, err := uadmin.DecodePageWithDefaults([]byte(`{}`), uadmin.DecodeJSON[testRecord], defaults)
	require.NoError(t, err)

	assert.Equal(t, 50, page.PerPage)
}

func TestDecodePage_MissingItemsYieldsEmptySlice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "absent", body: `{"page": 1, "total_pages": 0}`},
		{name: "null", body: `{"data": null, "page": 1}`},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			page, err := uadmin.DecodePage([]byte(testCase.body), uadmin.DecodeJSON[testRecord])
			require.NoError(t, err)

			assert.NotNil(t, page.Items)
			assert.Empty(t, page.Items)
		})
	}
}

func TestDecodePage_MalformedItemFailsWholePage(t *testing.T) {
	t.Parallel()

	body := []byte(`{"data": [{"name":"ana"}, {"name": 42}], "page": 1}`)

	page, err := uadmin.DecodePage(body, uadmin.DecodeJSON[testRecord])

	require.Error(t, err)
	assert.Nil(t, page)
	assert.Contains(t, err.Error(), "decoding item 1")
}

func TestDecodePage_StringEncodedIntegers(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"data": [],
		"page": "2",
		"per_page": "10",
		"total": "40",
		"total_pages": "4"
	}`)

	page, err := uadmin.DecodePage(body, uadmin.DecodeJSON[testRecord])
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PerPage)
	assert.Equal(t, 40, page.Total)
	assert.Equal(t, 4, page.TotalPages)
	assert.True(t, page.HasNextPage)
}

func TestDecodePage_NonNumericMetadataFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	body := []byte(`{"data": [], "page": "soon", "total_pages": true}`)

	page, err := uadmin.DecodePage(body, uadmin.DecodeJSON[testRecord])
	require.NoError(t, err)

	assert.Equal(t, uadmin.StandardPageDefaults.Page, page.Page)
	assert.Equal(t, uadmin.StandardPageDefaults.TotalPages, page.TotalPages)
}
