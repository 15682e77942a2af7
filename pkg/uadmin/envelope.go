package uadmin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Status classifies an API response envelope.
type Status string

const (
	// StatusSuccess marks a successful response.
	StatusSuccess Status = "success"

	// StatusError marks a failed response.
	StatusError Status = "error"
)

// DefaultErrorMessage is used when a failed response carries no message.
const DefaultErrorMessage = "request failed"

// Decoder converts a raw JSON payload into a typed value.
type Decoder[T any] func(json.RawMessage) (T, error)

// Envelope is the generic success/failure wrapper every endpoint
// responds with. Data is set only when Status is StatusSuccess and a
// decoder was supplied; a payload that fails to decode converts the
// whole envelope to StatusError rather than surfacing a partial value.
type Envelope[T any] struct {
	Status  Status `json:"status"            yaml:"status"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Data    *T     `json:"data,omitempty"    yaml:"data,omitempty"`
}

// OK reports whether the envelope carries a successful response.
func (e Envelope[T]) OK() bool {
	return e.Status == StatusSuccess
}

// Err returns the envelope's failure as an error, or nil on success.
func (e Envelope[T]) Err() error {
	if e.OK() {
		return nil
	}

	return &APIError{Message: e.Message}
}

// DecodeEnvelope normalizes a response body into an Envelope. The wire
// status string decides success: "error", "fail", and "failed"
// (case-insensitive) mark a failure; anything else, including an absent
// status field, counts as success since the transport layer already
// rejected non-2xx exchanges. A nil decoder leaves Data unset, which is
// how void-result operations such as delete are decoded. The decoder is
// applied to the nested "data" field when present, otherwise to the
// body itself. DecodeEnvelope never returns a Go error: malformed
// bodies and decoder failures both yield a StatusError envelope.
func DecodeEnvelope[T any](raw []byte, dec Decoder[T]) Envelope[T] {
	var wire struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(raw, &wire); err != nil {
		return Envelope[T]{
			Status:  StatusError,
			Message: fmt.Sprintf("failed to decode response: %v", err),
		}
	}

	if statusIndicatesFailure(wire.Status) {
		message := wire.Message
		if message == "" {
			message = DefaultErrorMessage
		}

		return Envelope[T]{Status: StatusError, Message: message}
	}

	envelope := Envelope[T]{Status: StatusSuccess, Message: wire.Message}
	if dec == nil {
		return envelope
	}

	payload := wire.Data
	if isAbsent(payload) {
		payload = raw
	}

	value, err := dec(payload)
	if err != nil {
		return Envelope[T]{
			Status:  StatusError,
			Message: fmt.Sprintf("failed to decode response payload: %v", err),
		}
	}

	envelope.Data = &value

	return envelope
}

// EnvelopeError inspects a response body's envelope and returns its
// failure as an error, or nil when the envelope reports success. List
// endpoints use it before DecodePage, since their pagination metadata
// lives outside the "data" field an Envelope decoder would see.
func EnvelopeError(raw []byte) error {
	return DecodeEnvelope[struct{}](raw, nil).Err()
}

// statusIndicatesFailure checks the wire status string for the failure
// spellings the API is known to use.
func statusIndicatesFailure(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "error", "fail", "failed":
		return true
	default:
		return false
	}
}

// isAbsent reports whether a raw JSON value is missing or null.
func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
