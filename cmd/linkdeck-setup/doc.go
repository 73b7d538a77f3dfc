// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command linkdeck-setup is the guided first-run configuration wizard.
//
// It walks through the settings linkdeck needs to talk to the
// automation agent and the content backend, then writes
// ~/.linkdeck/config.toml:
//
//	linkdeck-setup           Interactive wizard
//	linkdeck-setup --text    Plain prompts for terminals without TTY
//
// Existing configuration is loaded first, so re-running the wizard
// edits the current values instead of starting from scratch.
package main
