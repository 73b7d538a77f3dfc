// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import "time"

// =============================================================================
// TABLE ROWS
// =============================================================================

// Article is a row in the ref_article table: a curated industry article the
// agent can turn into a post.
type Article struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
	URL     string    `json:"url"`
	Date    time.Time `json:"date"`
}

// Blog is a row in the blog table: a company blog post.
type Blog struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// Template is a row in the template table: a reusable post skeleton the
// agent fills in.
type Template struct {
	ID      int64  `json:"id"`
	Name    string `json:"template_name"`
	Content string `json:"content"`
}

// Source is a row in the source table: a feed the article scraper watches.
type Source struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// =============================================================================
// SCHEDULED POSTS
// =============================================================================

// PostStatus is the review state of a scheduled post.
type PostStatus string

const (
	StatusPending  PostStatus = "pending"
	StatusApproved PostStatus = "approved"
	StatusDeclined PostStatus = "declined"
)

// Valid reports whether s is a known review state.
func (s PostStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// ScheduledPost is a row in the schedulepost table: a drafted post waiting
// for review before publication.
type ScheduledPost struct {
	ID        int64      `json:"id"`
	Post      string     `json:"post"`
	Status    PostStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
