// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session persists the chat session identity across runs.
//
// The identifier is stored as a single line in the state directory and is
// reused on every launch until the user rotates it. Rotation mints a fresh
// identifier, which the transcript layer uses to discard replies that arrive
// for the old session.
package session
