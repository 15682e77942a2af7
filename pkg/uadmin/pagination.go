package uadmin

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PageDefaults is the policy applied to pagination fields that are
// missing from a list response at both the top level and under the
// nested "pagination" object.
type PageDefaults struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// StandardPageDefaults is the default policy: first page, ten records,
// empty collection.
var StandardPageDefaults = PageDefaults{Page: 1, PerPage: 10, Total: 0, TotalPages: 0}

// Page is one page of a filtered, paginated collection. Items keep the
// server's ordering. HasNextPage and HasPreviousPage are derived from
// the resolved page numbers on construction and never read off the
// wire. A Page is never mutated after construction; refetching a list
// replaces the whole value.
type Page[T any] struct {
	Items      []T `json:"items"       yaml:"items"`
	Page       int `json:"page"        yaml:"page"`
	PerPage    int `json:"per_page"    yaml:"per_page"`
	Total      int `json:"total"       yaml:"total"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`

	HasNextPage     bool `json:"has_next_page"     yaml:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page" yaml:"has_previous_page"`
}

// NewPage constructs a page and computes the derived navigation flags.
func NewPage[T any](items []T, page, perPage, total, totalPages int) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items:           items,
		Page:            page,
		PerPage:         perPage,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// DecodePage decodes a list response body using StandardPageDefaults.
func DecodePage[T any](raw []byte, dec Decoder[T]) (*Page[T], error) {
	return DecodePageWithDefaults(raw, dec, StandardPageDefaults)
}

// DecodePageWithDefaults decodes a list response body. Each pagination
// field is resolved independently: a top-level key takes precedence
// over the same key nested under "pagination", and the defaults policy
// fills whatever is present in neither place. Items come from the
// top-level "data" array; a missing or null array decodes to an empty
// page, but a single item that fails the item decoder fails the whole
// page so a short page is never mistaken for a complete one.
func DecodePageWithDefaults[T any](raw []byte, dec Decoder[T], defaults PageDefaults) (*Page[T], error) {
	var wire struct {
		Data       []json.RawMessage `json:"data"`
		Page       flexInt           `json:"page"`
		PerPage    flexInt           `json:"per_page"`
		Total      flexInt           `json:"total"`
		TotalPages flexInt           `json:"total_pages"`
		Pagination struct {
			Page       flexInt `json:"page"`
			PerPage    flexInt `json:"per_page"`
			Total      flexInt `json:"total"`
			TotalPages flexInt `json:"total_pages"`
		} `json:"pagination"`
	}

	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	items := make([]T, 0, len(wire.Data))

	for i, rawItem := range wire.Data {
		item, err := dec(rawItem)
		if err != nil {
			return nil, fmt.Errorf("decoding item %d: %w", i, err)
		}

		items = append(items, item)
	}

	return NewPage(
		items,
		resolveField(wire.Page, wire.Pagination.Page, defaults.Page),
		resolveField(wire.PerPage, wire.Pagination.PerPage, defaults.PerPage),
		resolveField(wire.Total, wire.Pagination.Total, defaults.Total),
		resolveField(wire.TotalPages, wire.Pagination.TotalPages, defaults.TotalPages),
	), nil
}

// DecodeJSON is the plain json.Unmarshal item decoder.
func DecodeJSON[T any](raw json.RawMessage) (T, error) {
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, fmt.Errorf("unmarshaling value: %w", err)
	}

	return value, nil
}

// resolveField applies the top-level > nested > default precedence for
// one pagination field.
func resolveField(top, nested flexInt, def int) int {
	if top.present {
		return top.value
	}

	if nested.present {
		return nested.value
	}

	return def
}

// flexInt is an integer that tolerates the encodings list endpoints
// use for pagination metadata: a JSON number, a numeric string, or
// absent. Null and non-numeric values count as absent rather than
// failing the decode.
type flexInt struct {
	value   int
	present bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if unquoted := strings.Trim(trimmed, `"`); unquoted != trimmed {
		trimmed = strings.TrimSpace(unquoted)
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}

	f.value = int(parsed)
	f.present = true

	return nil
}
