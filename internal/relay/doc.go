// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package relay sends chat turns to the automation webhook and turns the
// reply into an agent turn.
//
// Each request is one attempt with no retry; any transport or decoding failure
// produces a fixed error turn so the transcript always records an outcome.
// Reply payloads vary by workflow version, so the body is normalized by
// checking a fixed list of fields in priority order.
package relay
