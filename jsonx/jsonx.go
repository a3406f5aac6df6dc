// Package jsonx provides small JSON round-trip helpers used across the
// program.
package jsonx

import (
	"encoding/json"
	"fmt"
)

// Marshal serializes v to a JSON string. Struct keys follow field
// declaration order; map keys are sorted as encoding/json defines.
func Marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal to json: %w", err)
	}
	return string(data), nil
}

// Unmarshal decodes data over a copy of proto and returns the populated
// copy. The proto value supplies defaults and, through its type, the method
// set available on the result; fields absent from data keep the proto's
// values. Invalid JSON fails with the decoder's error.
func Unmarshal[T any](proto T, data string) (T, error) {
	out := proto
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to unmarshal json: %w", err)
	}
	return out, nil
}

// Remarshal converts v into proto's type by passing it through JSON.
func Remarshal[T any](proto T, v any) (T, error) {
	s, err := Marshal(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return Unmarshal(proto, s)
}
