// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view of the linkdeck TUI.
//
// The view owns the transcript for the active session. Sending a message
// appends the user turn immediately, blocks further input, and posts the turn
// to the webhook in the background; the reply (or a fixed error turn) is
// appended when it lands. A ceiling timer force-unblocks the input if no
// reply arrives in time, and replies tagged with a rotated-away session are
// dropped instead of appended.
package chat
