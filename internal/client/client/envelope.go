package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// decodeData reads T out of either {data: X}, {data: [X]} or a bare X.
func decodeData[T any](body []byte) (T, error) {
	var zero T

	raw := bytes.TrimSpace(body)
	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
			raw = bytes.TrimSpace(env.Data)
		}
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return zero, ErrEmptyData
	}

	if raw[0] == '[' {
		var wrapped []T
		if err := json.Unmarshal(raw, &wrapped); err == nil {
			if len(wrapped) == 0 {
				return zero, nil
			}
			return wrapped[0], nil
		}
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}

// decodeMessage finds a "message" at the top level or inside data.
func decodeMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	m, err := decodeData[struct {
		Message string `json:"message"`
	}](body)
	if err != nil {
		return ""
	}
	return m.Message
}
