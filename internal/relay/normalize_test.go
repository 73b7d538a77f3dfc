// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package relay

import (
	"errors"
	"testing"
)

func TestNormalizeFieldPriority(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"output wins", `{"output":"a","message":"b","response":"c"}`, "a"},
		{"message next", `{"message":"b","response":"c"}`, "b"},
		{"response last", `{"response":"c"}`, "c"},
		{"empty output falls through", `{"output":"","message":"b"}`, "b"},
		{"non-string output falls through", `{"output":42,"message":"b"}`, "b"},
		{"array wrapper unwrapped", `[{"output":"a"}]`, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize([]byte(tt.body))
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%s) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestNormalizeUnknownShapeSerialized(t *testing.T) {
	got, err := Normalize([]byte(`{}`))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != "{}" {
		t.Errorf("Normalize({}) = %q, want %q", got, "{}")
	}

	got, err = Normalize([]byte(`{"status": "queued"}`))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != `{"status":"queued"}` {
		t.Errorf("got %q, want compact payload", got)
	}
}

func TestNormalizeRejectsNonJSON(t *testing.T) {
	for _, body := range []string{"", "plain text", "<html>oops</html>"} {
		if _, err := Normalize([]byte(body)); !errors.Is(err, ErrNotJSON) {
			t.Errorf("Normalize(%q) error = %v, want ErrNotJSON", body, err)
		}
	}
}
