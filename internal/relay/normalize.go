// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// replyFields is the priority order of fields checked for the reply text.
// Different workflow versions name the output field differently.
var replyFields = [...]string{"output", "message", "response"}

// ErrNotJSON indicates the reply body was not a JSON document.
var ErrNotJSON = errors.New("reply is not JSON")

// Normalize extracts the agent's reply text from a webhook response body.
//
// The first known field carrying a non-empty string wins. A JSON document
// with none of the known fields is returned re-serialized in compact form so
// the raw payload is still visible in the transcript. A non-JSON body is an
// error.
func Normalize(body []byte) (string, error) {
	raw := json.RawMessage(body)

	// Some workflow runners wrap the reply in a single-element array.
	var arr []json.RawMessage
	if err := json.Unmarshal(body, &arr); err == nil && len(arr) > 0 {
		raw = arr[0]
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotJSON, firstLine(body))
	}

	for _, field := range replyFields {
		val, ok := obj[field]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(val, &s); err == nil && s != "" {
			return s, nil
		}
	}

	// No known field; show the payload itself.
	compact, err := json.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotJSON, firstLine(body))
	}
	return string(compact), nil
}

// firstLine trims a body down to something loggable.
func firstLine(body []byte) string {
	s := strings.TrimSpace(string(body))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 120 {
		s = s[:120]
	}
	return s
}
