package uadmin

import (
	"net/url"
	"strconv"
	"strings"
)

// ListQuery carries the filter and paging parameters for a list fetch.
// Active is a tri-state filter: nil places no constraint, a non-nil
// value constrains to active or inactive accounts.
type ListQuery struct {
	Page    int
	PerPage int
	RoleID  string
	Search  string
	Active  *bool
}

// NewListQuery creates a query for the first page with default sizing.
func NewListQuery() ListQuery {
	return ListQuery{
		Page:    StandardPageDefaults.Page,
		PerPage: StandardPageDefaults.PerPage,
	}
}

// WithPage returns a copy of the query targeting the given page.
func (q ListQuery) WithPage(page int) ListQuery {
	q.Page = page

	return q
}

// ToValues encodes the query for the wire. Paging fields are always
// sent; the role filter only when an ID is set; search as a trimmed
// non-empty string; the active filter as the literal "true"/"false"
// only when the tri-state is resolved.
func (q ListQuery) ToValues() url.Values {
	values := url.Values{}

	page := q.Page
	if page < 1 {
		page = StandardPageDefaults.Page
	}

	perPage := q.PerPage
	if perPage < 1 {
		perPage = StandardPageDefaults.PerPage
	}

	values.Set("page", strconv.Itoa(page))
	values.Set("per_page", strconv.Itoa(perPage))

	if q.RoleID != "" {
		values.Set("role_id", q.RoleID)
	}

	if search := strings.TrimSpace(q.Search); search != "" {
		values.Set("search", search)
	}

	if q.Active != nil {
		values.Set("is_active", strconv.FormatBool(*q.Active))
	}

	return values
}

// BoolPtr is a convenience for building tri-state filters.
func BoolPtr(b bool) *bool {
	return &b
}

// AuditLogQuery carries the filter and paging parameters for an audit
// trail fetch.
type AuditLogQuery struct {
	Page    int
	PerPage int
	UserID  string
	Action  string
}

// ToValues encodes the audit query for the wire.
func (q AuditLogQuery) ToValues() url.Values {
	values := url.Values{}

	page := q.Page
	if page < 1 {
		page = StandardPageDefaults.Page
	}

	perPage := q.PerPage
	if perPage < 1 {
		perPage = StandardPageDefaults.PerPage
	}

	values.Set("page", strconv.Itoa(page))
	values.Set("per_page", strconv.Itoa(perPage))

	if q.UserID != "" {
		values.Set("user_id", q.UserID)
	}

	if action := strings.TrimSpace(q.Action); action != "" {
		values.Set("action", action)
	}

	return values
}
