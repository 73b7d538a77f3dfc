// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the linkdeck command line surface.
//
// Running linkdeck with no arguments starts the TUI. Everything else is
// a plain-output command suitable for scripts and SSH sessions:
//
//	linkdeck chat                 Interactive chat REPL (readline-style)
//	linkdeck articles             List reference articles
//	linkdeck blogs                List reference blogs
//	linkdeck templates [NAME]     List templates or show one
//	linkdeck queue                Show the scheduled post queue
//	linkdeck approve ID           Approve a queued post
//	linkdeck decline ID           Decline a queued post
//	linkdeck session [new]        Show or rotate the chat session
//	linkdeck config [path|show]   Configuration inspection
//	linkdeck version              Version information
//
// Output is rendered as markdown when stdout is a terminal and falls
// back to plain text when piped.
package cli
