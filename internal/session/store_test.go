// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetOrCreatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	s := NewStore(path)
	id := s.GetOrCreate()
	if id == "" {
		t.Fatal("expected non-empty session ID")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != id {
		t.Errorf("persisted ID = %q, want %q", got, id)
	}
}

func TestGetOrCreateIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	s := NewStore(path)
	first := s.GetOrCreate()
	if second := s.GetOrCreate(); second != first {
		t.Errorf("second GetOrCreate = %q, want %q", second, first)
	}

	// A fresh store over the same file must return the persisted ID.
	s2 := NewStore(path)
	if got := s2.GetOrCreate(); got != first {
		t.Errorf("reloaded ID = %q, want %q", got, first)
	}
}

func TestRotateMintsNewID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	s := NewStore(path)
	old := s.GetOrCreate()
	rotated := s.Rotate()

	if rotated == old {
		t.Error("expected Rotate to mint a different ID")
	}
	if got := s.Current(); got != rotated {
		t.Errorf("Current = %q, want %q", got, rotated)
	}

	s2 := NewStore(path)
	if got := s2.GetOrCreate(); got != rotated {
		t.Errorf("reloaded ID = %q, want rotated %q", got, rotated)
	}
}

func TestLoadIgnoresGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 300)), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := NewStore(path)
	id := s.GetOrCreate()
	if id == "" || len(id) > 128 {
		t.Errorf("expected a freshly minted ID, got %q", id)
	}
}

func TestUnwritablePathFallsBackToMemory(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing-dir", "deep", "session"))

	id := s.GetOrCreate()
	if id == "" {
		t.Fatal("expected an in-memory ID despite persist failure")
	}
	if second := s.GetOrCreate(); second != id {
		t.Errorf("in-memory ID changed: %q != %q", second, id)
	}
}
