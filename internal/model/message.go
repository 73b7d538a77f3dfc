// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// SENDER
// ============================================================================

// Sender identifies who produced a turn.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// DisplayName returns the label shown next to a turn in the transcript.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderAgent:
		return "Agent"
	default:
		return string(s)
	}
}

// ============================================================================
// TURN
// ============================================================================

// Turn is a single entry in the transcript.
type Turn struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// SessionID is the session that was active when the turn was created.
	// Turns carrying a stale SessionID are discarded instead of appended.
	SessionID string `json:"session_id"`
}

// NewUserTurn creates a turn authored by the user under the given session.
func NewUserTurn(content, sessionID string) Turn {
	return newTurn(SenderUser, content, sessionID)
}

// NewAgentTurn creates a turn authored by the remote agent under the given
// session.
func NewAgentTurn(content, sessionID string) Turn {
	return newTurn(SenderAgent, content, sessionID)
}

func newTurn(sender Sender, content, sessionID string) Turn {
	return Turn{
		ID:        "turn_" + uuid.NewString(),
		Sender:    sender,
		Content:   content,
		CreatedAt: time.Now(),
		SessionID: sessionID,
	}
}
