// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package intent

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeedArticle(t *testing.T) {
	in := NewArticle("Go 1.24 Released", "Generics got faster.", "https://example.com/go-1-24")

	want := "Create a post about the following article\n\n" +
		"**Title:** Go 1.24 Released\n" +
		"**Summary:** Generics got faster.\n" +
		"**URL:** https://example.com/go-1-24"
	if got := in.Seed(); got != want {
		t.Errorf("Seed() = %q, want %q", got, want)
	}

	// URL is optional and omitted when absent.
	in = NewArticle("Go 1.24 Released", "Generics got faster.", "")
	if got := in.Seed(); strings.Contains(got, "**URL:**") {
		t.Errorf("Seed() without URL should omit the URL line, got %q", got)
	}
}

func TestSeedBlogTruncatesContent(t *testing.T) {
	long := strings.Repeat("a", 500)
	in := NewBlog("My Post", long)

	seed := in.Seed()
	if !strings.HasPrefix(seed, "Create a social media post about the following blog:\n\n**Title:** My Post\n**Summary:** ") {
		t.Errorf("unexpected seed prefix: %q", seed)
	}
	if !strings.HasSuffix(seed, strings.Repeat("a", 200)) {
		t.Error("expected summary truncated to 200 runes")
	}
	if strings.Contains(seed, strings.Repeat("a", 201)) {
		t.Error("summary exceeds 200 runes")
	}
}

func TestSeedTemplate(t *testing.T) {
	in := NewTemplate("weekly-roundup")
	if got, want := in.Seed(), "Make post using template: weekly-roundup"; got != want {
		t.Errorf("Seed() = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Intent
		wantErr bool
	}{
		{"article ok", NewArticle("t", "s", ""), false},
		{"article missing summary", NewArticle("t", "", ""), true},
		{"blog ok", NewBlog("t", "body"), false},
		{"blog missing content", NewBlog("t", ""), true},
		{"template ok", NewTemplate("n"), false},
		{"template missing name", NewTemplate(""), true},
		{"generic ok", NewGeneric("hi"), false},
		{"generic empty", NewGeneric(""), true},
		{"unknown kind", Intent{Kind: "bogus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSlotPublishConsume(t *testing.T) {
	slot := NewSlot(filepath.Join(t.TempDir(), FileName))

	if err := slot.Publish(NewTemplate("promo")); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	got, ok := slot.ConsumeOnce()
	if !ok {
		t.Fatal("expected a pending intent")
	}
	if got.Kind != KindTemplate || got.Name != "promo" {
		t.Errorf("got %+v, want template promo", got)
	}

	// The slot holds a single intent; a second consume finds nothing.
	if _, ok := slot.ConsumeOnce(); ok {
		t.Error("expected slot to be empty after consume")
	}
}

func TestSlotLastWriterWins(t *testing.T) {
	slot := NewSlot(filepath.Join(t.TempDir(), FileName))

	if err := slot.Publish(NewTemplate("first")); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := slot.Publish(NewTemplate("second")); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	got, ok := slot.ConsumeOnce()
	if !ok || got.Name != "second" {
		t.Errorf("got %+v, %v; want the later publish", got, ok)
	}
}

func TestSlotDiscardsInvalidPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	slot := NewSlot(path)

	cases := []string{
		"{not json",
		`{"type":"article","title":"only a title"}`,
	}
	for _, raw := range cases {
		if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, ok := slot.ConsumeOnce(); ok {
			t.Errorf("payload %q should have been discarded", raw)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("slot file should be removed after consuming %q", raw)
		}
	}
}
