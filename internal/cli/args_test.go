// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"reflect"
	"testing"
)

func TestArgParserFlagFormats(t *testing.T) {
	p := NewArgParser([]string{"articles", "--search", "golang", "--limit=10", "--json", "-q"})

	if p.Subcommand() != "articles" {
		t.Errorf("Subcommand() = %q, want %q", p.Subcommand(), "articles")
	}
	if got := p.Flag("search"); got != "golang" {
		t.Errorf("Flag(search) = %q, want %q", got, "golang")
	}
	if got := p.Flag("limit"); got != "10" {
		t.Errorf("Flag(limit) = %q, want %q", got, "10")
	}
	if !p.BoolFlag("json") {
		t.Error("BoolFlag(json) = false, want true")
	}
	if !p.BoolFlag("q") {
		t.Error("BoolFlag(q) = false, want true")
	}
}

func TestArgParserExplicitBool(t *testing.T) {
	p := NewArgParser([]string{"--json=false", "--offline=true"})

	if p.BoolFlag("json") {
		t.Error("BoolFlag(json) = true, want false")
	}
	if !p.BoolFlag("offline") {
		t.Error("BoolFlag(offline) = false, want true")
	}
}

func TestArgParserPositionals(t *testing.T) {
	p := NewArgParser([]string{"templates", "Product", "Launch"})

	if p.PositionalCount() != 3 {
		t.Fatalf("PositionalCount() = %d, want 3", p.PositionalCount())
	}
	if got := p.Positional(1); got != "Product" {
		t.Errorf("Positional(1) = %q, want %q", got, "Product")
	}
	if got := p.Positional(99); got != "" {
		t.Errorf("Positional(99) = %q, want empty", got)
	}
	want := []string{"Product", "Launch"}
	if got := p.PositionalFrom(1); !reflect.DeepEqual(got, want) {
		t.Errorf("PositionalFrom(1) = %v, want %v", got, want)
	}
}

func TestArgParserFlagDefaults(t *testing.T) {
	p := NewArgParser([]string{"--limit", "abc"})

	if got := p.FlagIntOrDefault("limit", 20); got != 20 {
		t.Errorf("FlagIntOrDefault(limit) = %d, want fallback 20", got)
	}
	if got := p.FlagOrDefault("missing", "x"); got != "x" {
		t.Errorf("FlagOrDefault(missing) = %q, want %q", got, "x")
	}
	if got := p.FlagIntOrDefault("absent", 5); got != 5 {
		t.Errorf("FlagIntOrDefault(absent) = %d, want 5", got)
	}
}

func TestArgParserHasFlag(t *testing.T) {
	p := NewArgParser([]string{"--search", "x", "--json"})

	if !p.HasFlag("search") || !p.HasFlag("json") {
		t.Error("HasFlag should see both string and bool flags")
	}
	if p.HasFlag("limit") {
		t.Error("HasFlag(limit) = true, want false")
	}
}

func TestParsePostID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"1", 1, false},
		{"", 0, true},
		{"abc", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePostID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePostID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePostID(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
