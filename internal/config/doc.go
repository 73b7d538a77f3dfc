// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and persists linkdeck configuration.
//
// Configuration lives in TOML at ~/.linkdeck/config.toml with built-in
// defaults and environment variable overrides applied on top. The same
// directory holds the chat session file, the pending intent slot, the
// content cache, and the log file.
//
// Environment overrides:
//   - LINKDECK_WEBHOOK_URL  agent webhook endpoint
//   - LINKDECK_BACKEND_URL  Supabase project URL
//   - LINKDECK_BACKEND_KEY  Supabase API key
package config
