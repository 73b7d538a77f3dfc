// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat transcripts.
//
// A Transcript is the append-only log of turns for the active conversation.
// Turns are tagged with the session identifier that was active when they were
// created; rotating the session drops the whole log. Turns are never edited
// or reordered after creation.
package model
