// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/digitalbiz/linkdeck/internal/util"
)

// =============================================================================
// SESSION IDENTITY STORE
// =============================================================================

// FileName is the session file inside the state directory.
const FileName = "session"

// Store loads and persists the chat session identifier.
//
// When the backing file cannot be written the store degrades to an in-memory
// identifier that lasts for the lifetime of the process.
type Store struct {
	mu   sync.Mutex
	path string
	id   string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// GetOrCreate returns the current session identifier, loading it from disk or
// minting and persisting a new one if none exists.
func (s *Store) GetOrCreate() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id != "" {
		return s.id
	}

	if id := s.load(); id != "" {
		s.id = id
		return s.id
	}

	s.id = newSessionID()
	s.persist()
	return s.id
}

// Rotate discards the current identifier and persists a fresh one.
func (s *Store) Rotate() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = newSessionID()
	s.persist()
	return s.id
}

// Current returns the in-memory identifier without touching disk. Empty until
// GetOrCreate has run.
func (s *Store) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// load reads the persisted identifier, returning "" if missing or unusable.
func (s *Store) load() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	id := strings.TrimSpace(string(data))
	if id == "" || len(id) > 128 {
		return ""
	}
	return id
}

// persist writes the identifier to disk. Failure is logged and tolerated; the
// identifier stays valid in memory for this run.
func (s *Store) persist() {
	if s.path == "" {
		return
	}
	if err := util.AtomicWriteFile(s.path, []byte(s.id+"\n"), 0600); err != nil {
		log.Printf("session: persist failed: %v", err)
	}
}

// newSessionID mints a fresh session identifier.
func newSessionID() string {
	return uuid.NewString()
}
