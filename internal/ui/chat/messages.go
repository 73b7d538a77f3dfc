// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/digitalbiz/linkdeck/internal/model"
)

// =============================================================================
// RELAY MESSAGES
// =============================================================================

// RelayReplyMsg delivers the outcome of a webhook exchange. Turn is nil only
// when the send was rejected before leaving (empty input, missing webhook).
type RelayReplyMsg struct {
	Turn *model.Turn
	Err  error
}

// TypingCeilingMsg fires when the reply wait has gone on too long. Seq ties
// the timer to the send that armed it so a stale timer cannot unblock a
// later exchange.
type TypingCeilingMsg struct {
	Seq int
}

// =============================================================================
// UPLOAD MESSAGES
// =============================================================================

// UploadResultMsg delivers the outcome of an attachment upload.
type UploadResultMsg struct {
	Name string
	URL  string
	Err  error
}

// =============================================================================
// SESSION MESSAGES
// =============================================================================

// SessionRotatedMsg announces a fresh session identifier.
type SessionRotatedMsg struct {
	SessionID string
}
