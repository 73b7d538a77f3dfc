// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across linkdeck packages.
//
// AtomicWriteFile is the write path for every piece of state the dashboard
// persists (session identity, pending intents, configuration): the data is
// staged in a temp file, fsynced, and renamed into place so a crash never
// leaves a half-written slot behind.
package util
