// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digitalbiz/linkdeck/internal/backend"
	"github.com/digitalbiz/linkdeck/internal/cache"
)

// dataTimeout bounds each backend fetch issued by the views.
const dataTimeout = 15 * time.Second

// =============================================================================
// DATA MESSAGES
// =============================================================================

// ArticlesMsg delivers the article list. FromCache marks an offline fallback.
type ArticlesMsg struct {
	Articles  []backend.Article
	FromCache bool
	Err       error
}

// BlogsMsg delivers the blog list.
type BlogsMsg struct {
	Blogs     []backend.Blog
	FromCache bool
	Err       error
}

// TemplatesMsg delivers the template list.
type TemplatesMsg struct {
	Templates []backend.Template
	Err       error
}

// QueueMsg delivers the scheduled-post queue.
type QueueMsg struct {
	Posts []backend.ScheduledPost
	Err   error
}

// SourcesMsg delivers the watched feed list.
type SourcesMsg struct {
	Sources []backend.Source
	Err     error
}

// PostUpdatedMsg confirms an approve/decline action.
type PostUpdatedMsg struct {
	Post *backend.ScheduledPost
	Err  error
}

// =============================================================================
// DATA COMMANDS
// =============================================================================

func loadArticles(client *backend.Client, store *cache.Cache) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dataTimeout)
		defer cancel()

		articles, err := client.ListArticles(ctx)
		if err == nil {
			if store != nil {
				if cerr := store.ReplaceArticles(ctx, articles); cerr != nil {
					log.Printf("cache: article refresh failed: %v", cerr)
				}
			}
			return ArticlesMsg{Articles: articles}
		}

		// Backend unreachable; serve the local mirror.
		if store != nil {
			if cached, cerr := store.Articles(ctx); cerr == nil && len(cached) > 0 {
				return ArticlesMsg{Articles: cached, FromCache: true}
			}
		}
		return ArticlesMsg{Err: err}
	}
}

func loadBlogs(client *backend.Client, store *cache.Cache) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dataTimeout)
		defer cancel()

		blogs, err := client.ListBlogs(ctx)
		if err == nil {
			if store != nil {
				if cerr := store.ReplaceBlogs(ctx, blogs); cerr != nil {
					log.Printf("cache: blog refresh failed: %v", cerr)
				}
			}
			return BlogsMsg{Blogs: blogs}
		}

		if store != nil {
			if cached, cerr := store.Blogs(ctx); cerr == nil && len(cached) > 0 {
				return BlogsMsg{Blogs: cached, FromCache: true}
			}
		}
		return BlogsMsg{Err: err}
	}
}

func loadTemplates(client *backend.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dataTimeout)
		defer cancel()

		templates, err := client.ListTemplates(ctx)
		return TemplatesMsg{Templates: templates, Err: err}
	}
}

func loadQueue(client *backend.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dataTimeout)
		defer cancel()

		posts, err := client.ListQueue(ctx)
		return QueueMsg{Posts: posts, Err: err}
	}
}

func loadSources(client *backend.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dataTimeout)
		defer cancel()

		sources, err := client.ListSources(ctx)
		return SourcesMsg{Sources: sources, Err: err}
	}
}

func updatePostStatus(client *backend.Client, id int64, status backend.PostStatus) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dataTimeout)
		defer cancel()

		post, err := client.UpdatePostStatus(ctx, id, status)
		return PostUpdatedMsg{Post: post, Err: err}
	}
}
