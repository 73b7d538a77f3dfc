// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// data.go - Plain-output handlers for the content backend: articles,
// blogs, templates, the review queue, and watched sources. Lists fall
// back to the local cache when the backend is unreachable.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/digitalbiz/linkdeck/internal/backend"
	"github.com/digitalbiz/linkdeck/internal/cache"
	"github.com/digitalbiz/linkdeck/internal/config"
	"github.com/digitalbiz/linkdeck/internal/intent"
	"github.com/digitalbiz/linkdeck/internal/relay"
	"github.com/digitalbiz/linkdeck/internal/session"
	"github.com/digitalbiz/linkdeck/internal/storage"
)

// commandTimeout bounds every one-shot backend call.
const commandTimeout = 15 * time.Second

// Deps carries the wired services every CLI handler needs.
type Deps struct {
	Config   *config.Config
	Backend  *backend.Client
	Cache    *cache.Cache
	Relay    *relay.Client
	Uploader *storage.Uploader
	Sessions *session.Store
	Slot     *intent.Slot
}

// =============================================================================
// ARTICLES / BLOGS
// =============================================================================

// HandleArticles lists reference articles, newest first.
func HandleArticles(deps *Deps, args Args) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	articles, fromCache, err := fetchArticles(ctx, deps, args)
	if err != nil {
		return err
	}
	if args.Search != "" {
		articles = filterArticles(articles, args.Search)
	}
	if args.Limit > 0 && len(articles) > args.Limit {
		articles = articles[:args.Limit]
	}

	if args.JSON {
		return printJSON(articles)
	}

	if len(articles) == 0 {
		fmt.Println("No articles found.")
		return nil
	}
	var b strings.Builder
	b.WriteString("# Articles\n\n")
	for _, a := range articles {
		fmt.Fprintf(&b, "- **%s** (%s)\n", a.Title, a.Date.Format("2006-01-02"))
		if a.Summary != "" {
			fmt.Fprintf(&b, "  %s\n", firstSentence(a.Summary))
		}
	}
	PrintMarkdown(b.String())
	if fromCache && !args.Quiet {
		fmt.Fprintln(os.Stderr, "(offline copy)")
	}
	return nil
}

func fetchArticles(ctx context.Context, deps *Deps, args Args) ([]backend.Article, bool, error) {
	if !args.Offline && deps.Backend.IsConfigured() {
		articles, err := deps.Backend.ListArticles(ctx)
		if err == nil {
			if deps.Cache != nil {
				_ = deps.Cache.ReplaceArticles(ctx, articles)
			}
			return articles, false, nil
		}
		if deps.Cache == nil {
			return nil, false, err
		}
	}
	if deps.Cache == nil {
		return nil, false, backend.ErrNotConfigured
	}
	if args.Search != "" {
		articles, err := deps.Cache.SearchArticles(ctx, args.Search)
		return articles, true, err
	}
	articles, err := deps.Cache.Articles(ctx)
	return articles, true, err
}

func filterArticles(articles []backend.Article, term string) []backend.Article {
	term = strings.ToLower(term)
	out := articles[:0]
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), term) ||
			strings.Contains(strings.ToLower(a.Summary), term) {
			out = append(out, a)
		}
	}
	return out
}

// HandleBlogs lists company blogs, newest first.
func HandleBlogs(deps *Deps, args Args) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	blogs, fromCache, err := fetchBlogs(ctx, deps, args)
	if err != nil {
		return err
	}
	if args.Search != "" {
		blogs = filterBlogs(blogs, args.Search)
	}
	if args.Limit > 0 && len(blogs) > args.Limit {
		blogs = blogs[:args.Limit]
	}

	if args.JSON {
		return printJSON(blogs)
	}

	if len(blogs) == 0 {
		fmt.Println("No blogs found.")
		return nil
	}
	var b strings.Builder
	b.WriteString("# Blogs\n\n")
	for _, blog := range blogs {
		fmt.Fprintf(&b, "- **%s** (%s)\n", blog.Title, blog.CreatedAt.Format("2006-01-02"))
	}
	PrintMarkdown(b.String())
	if fromCache && !args.Quiet {
		fmt.Fprintln(os.Stderr, "(offline copy)")
	}
	return nil
}

func fetchBlogs(ctx context.Context, deps *Deps, args Args) ([]backend.Blog, bool, error) {
	if !args.Offline && deps.Backend.IsConfigured() {
		blogs, err := deps.Backend.ListBlogs(ctx)
		if err == nil {
			if deps.Cache != nil {
				_ = deps.Cache.ReplaceBlogs(ctx, blogs)
			}
			return blogs, false, nil
		}
		if deps.Cache == nil {
			return nil, false, err
		}
	}
	if deps.Cache == nil {
		return nil, false, backend.ErrNotConfigured
	}
	if args.Search != "" {
		blogs, err := deps.Cache.SearchBlogs(ctx, args.Search)
		return blogs, true, err
	}
	blogs, err := deps.Cache.Blogs(ctx)
	return blogs, true, err
}

func filterBlogs(blogs []backend.Blog, term string) []backend.Blog {
	term = strings.ToLower(term)
	out := blogs[:0]
	for _, b := range blogs {
		if strings.Contains(strings.ToLower(b.Title), term) ||
			strings.Contains(strings.ToLower(b.Content), term) {
			out = append(out, b)
		}
	}
	return out
}

// =============================================================================
// TEMPLATES
// =============================================================================

// HandleTemplates lists templates, or shows a single one by name.
func HandleTemplates(deps *Deps, args Args) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if name := args.Subcommand; name != "" {
		tmpl, err := deps.Backend.GetTemplate(ctx, name)
		if err != nil {
			return err
		}
		if args.JSON {
			return printJSON(tmpl)
		}
		PrintMarkdown(fmt.Sprintf("# %s\n\n%s", tmpl.Name, tmpl.Content))
		return nil
	}

	templates, err := deps.Backend.ListTemplates(ctx)
	if err != nil {
		return err
	}
	if args.JSON {
		return printJSON(templates)
	}
	if len(templates) == 0 {
		fmt.Println("No templates found.")
		return nil
	}
	var b strings.Builder
	b.WriteString("# Templates\n\n")
	for _, t := range templates {
		fmt.Fprintf(&b, "- %s\n", t.Name)
	}
	PrintMarkdown(b.String())
	return nil
}

// =============================================================================
// REVIEW QUEUE
// =============================================================================

// HandleQueue lists the scheduled post queue.
func HandleQueue(deps *Deps, args Args) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	posts, err := deps.Backend.ListQueue(ctx)
	if err != nil {
		return err
	}
	if args.JSON {
		return printJSON(posts)
	}
	if len(posts) == 0 {
		fmt.Println("Queue is empty.")
		return nil
	}
	var b strings.Builder
	b.WriteString("# Scheduled Posts\n\n")
	for _, p := range posts {
		fmt.Fprintf(&b, "## #%d [%s] %s\n\n%s\n\n", p.ID, p.Status,
			p.CreatedAt.Format("2006-01-02"), firstSentence(p.Post))
	}
	PrintMarkdown(b.String())
	return nil
}

// HandleReview approves or declines a queued post.
func HandleReview(deps *Deps, args Args, status backend.PostStatus) error {
	id, err := ParsePostID(args.Subcommand)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	post, err := deps.Backend.UpdatePostStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if args.JSON {
		return printJSON(post)
	}
	fmt.Printf("Post #%d is now %s.\n", post.ID, post.Status)
	return nil
}

// =============================================================================
// SOURCES / SESSION / CONFIG
// =============================================================================

// HandleSources lists the feeds the article scraper watches.
func HandleSources(deps *Deps, args Args) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	sources, err := deps.Backend.ListSources(ctx)
	if err != nil {
		return err
	}
	if args.JSON {
		return printJSON(sources)
	}
	if len(sources) == 0 {
		fmt.Println("No sources configured.")
		return nil
	}
	var b strings.Builder
	b.WriteString("# Watched Feeds\n\n")
	for _, s := range sources {
		fmt.Fprintf(&b, "- **%s** <%s>\n", s.Name, s.URL)
	}
	PrintMarkdown(b.String())
	return nil
}

// HandleSession shows or rotates the persisted chat session.
func HandleSession(deps *Deps, args Args) error {
	switch args.Subcommand {
	case "", "show":
		fmt.Printf("Session: %s\n", deps.Sessions.GetOrCreate())
	case "new", "rotate":
		id := deps.Sessions.Rotate()
		fmt.Printf("New session: %s\n", id)
	default:
		return fmt.Errorf("unknown session subcommand: %s", args.Subcommand)
	}
	return nil
}

// HandleConfig inspects the loaded configuration.
func HandleConfig(deps *Deps, args Args) error {
	switch args.Subcommand {
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
	case "", "show":
		cfg := deps.Config
		fmt.Printf("webhook:   %s\n", orUnset(cfg.Agent.WebhookURL))
		fmt.Printf("timeout:   %ds\n", cfg.Agent.TimeoutSecs)
		fmt.Printf("backend:   %s\n", orUnset(cfg.Backend.URL))
		fmt.Printf("bucket:    %s\n", cfg.Storage.Bucket)
		fmt.Printf("prefix:    %s\n", cfg.Storage.UploadPrefix)
		fmt.Printf("theme:     %s\n", cfg.UI.Theme)
	default:
		return fmt.Errorf("unknown config subcommand: %s", args.Subcommand)
	}
	return nil
}

// =============================================================================
// OUTPUT HELPERS
// =============================================================================

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// firstSentence trims a body to its first line, capped for list output.
func firstSentence(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	const max = 120
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s
}
