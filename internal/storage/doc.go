// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage uploads chat attachments to a Supabase storage bucket.
//
// Only image files are accepted. Each upload is a single attempt under a
// generated object key; on success the public URL is returned so the image
// can be embedded into the outgoing message as markdown.
package storage
