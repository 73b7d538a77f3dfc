// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cache keeps a local SQLite copy of backend content.
//
// Articles and blogs fetched from the backend are mirrored here so the
// dashboard stays browsable when the project is unreachable, and so search
// runs locally instead of round-tripping per keystroke.
package cache
