// Package jsonutil provides shared helpers for decoding the JSON arrays served
// by the remote API: error wrapping with context and size-bounded reads.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxBodyBytes caps how much of a response body is read before decoding.
const MaxBodyBytes = 8 << 20

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalArray unmarshals a JSON array into a slice. An empty array yields
// an empty, non-nil slice; "null" is rejected since the API never serves it.
func UnmarshalArray[T any](data []byte, context string) ([]T, error) {
	var entries []T
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, fmt.Errorf("%s: expected JSON array", context)
	}
	return entries, nil
}

// ReadAll reads at most MaxBodyBytes from r and validates that the payload is
// a JSON array of T. It returns the raw bytes so callers can cache them.
func ReadAll[T any](r io.Reader, context string) ([]byte, []T, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBodyBytes+1))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: read body: %w", context, err)
	}
	if len(data) > MaxBodyBytes {
		return nil, nil, fmt.Errorf("%s: body exceeds %d bytes", context, MaxBodyBytes)
	}
	entries, err := UnmarshalArray[T](data, context)
	if err != nil {
		return nil, nil, err
	}
	return data, entries, nil
}
