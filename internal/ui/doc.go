// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui assembles the linkdeck terminal dashboard.
//
// The app is a set of views over one Bubble Tea program: a home screen,
// the chat conversation, browsable articles, blogs, and templates, the
// scheduled-post review queue, and a settings summary. Content views publish
// chat intents; selecting an item jumps to the chat view with the seed
// prompt already sent.
package ui
