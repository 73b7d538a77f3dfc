// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package intent carries a pending chat request from the content views into
// the chat view.
//
// The slot holds at most one intent. Publishing overwrites whatever is
// pending; consuming removes the intent before validating it, so a malformed
// payload is discarded rather than retried. Each intent kind renders a seed
// prompt that becomes the first user turn of the conversation.
package intent
