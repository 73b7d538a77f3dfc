// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// ============================================================================
// TRANSCRIPT
// ============================================================================

// Transcript is the append-only history of the active conversation.
//
// A Transcript is owned by a single goroutine (the UI event loop or the
// plain-mode REPL) and is not safe for concurrent use.
type Transcript struct {
	turns []Turn
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds a turn to the end of the transcript. If want is non-empty the
// turn's SessionID must match it; stale turns are dropped and Append reports
// false.
func (t *Transcript) Append(turn Turn, want string) bool {
	if want != "" && turn.SessionID != want {
		return false
	}
	t.turns = append(t.turns, turn)
	return true
}

// Clear discards every turn. Used when the session is rotated.
func (t *Transcript) Clear() {
	t.turns = nil
}

// Turns returns a copy of the turn list, oldest first.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// LastTurn returns the most recent turn, or false when the transcript is
// empty.
func (t *Transcript) LastTurn() (Turn, bool) {
	if len(t.turns) == 0 {
		return Turn{}, false
	}
	return t.turns[len(t.turns)-1], true
}
