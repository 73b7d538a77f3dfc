// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package intent

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/digitalbiz/linkdeck/internal/util"
)

// =============================================================================
// INTENT SLOT
// =============================================================================

// FileName is the pending-intent file inside the state directory.
const FileName = "intent.json"

// Slot is a single-entry mailbox for the pending intent, persisted so an
// intent published just before exit survives into the next run.
type Slot struct {
	mu   sync.Mutex
	path string
}

// NewSlot creates a slot backed by the given file path.
func NewSlot(path string) *Slot {
	return &Slot{path: path}
}

// Publish stores the intent, replacing any pending one.
func (s *Slot) Publish(in Intent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.path, data, 0600)
}

// ConsumeOnce removes and returns the pending intent, if any.
//
// The slot is emptied before validation; an unreadable or incomplete payload
// is discarded and reported as no pending intent.
func (s *Slot) ConsumeOnce() (Intent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Intent{}, false
	}

	// Remove first so a bad payload is never seen twice.
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		log.Printf("intent: clearing slot failed: %v", err)
	}

	var in Intent
	if err := json.Unmarshal(data, &in); err != nil {
		log.Printf("intent: discarding malformed payload: %v", err)
		return Intent{}, false
	}
	if err := in.Validate(); err != nil {
		log.Printf("intent: discarding %s intent: %v", in.Kind, err)
		return Intent{}, false
	}
	return in, true
}
