// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend reads and writes dashboard data through the Supabase REST
// interface.
//
// The client speaks plain PostgREST: row filters go in the query string and
// writes use Prefer headers to get the changed rows back. All calls share a
// rate limiter so list refreshes cannot hammer the project.
package backend
