// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalbiz/linkdeck/internal/backend"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func day(n int) time.Time {
	return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC)
}

func TestReplaceAndListArticles(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.ReplaceArticles(ctx, []backend.Article{
		{ID: 1, Title: "Older", Summary: "a", Date: day(1)},
		{ID: 2, Title: "Newer", Summary: "b", Date: day(5)},
	}))

	articles, err := c.Articles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Newer", articles[0].Title)
	assert.Equal(t, "Older", articles[1].Title)
}

func TestReplaceArticlesDropsStale(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.ReplaceArticles(ctx, []backend.Article{
		{ID: 1, Title: "Gone", Date: day(1)},
	}))
	require.NoError(t, c.ReplaceArticles(ctx, []backend.Article{
		{ID: 2, Title: "Kept", Date: day(2)},
	}))

	articles, err := c.Articles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Kept", articles[0].Title)
}

func TestSearchArticles(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.ReplaceArticles(ctx, []backend.Article{
		{ID: 1, Title: "Go generics deep dive", Summary: "types", Date: day(1)},
		{ID: 2, Title: "Hiring trends", Summary: "the Go job market", Date: day(2)},
		{ID: 3, Title: "Rust in prod", Summary: "memory", Date: day(3)},
	}))

	hits, err := c.SearchArticles(ctx, "Go")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	// Newest first.
	assert.Equal(t, int64(2), hits[0].ID)

	none, err := c.SearchArticles(ctx, "kubernetes")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestShuffledArticlesSameSet(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	var in []backend.Article
	for i := 1; i <= 20; i++ {
		in = append(in, backend.Article{ID: int64(i), Title: "t", Date: day(i)})
	}
	require.NoError(t, c.ReplaceArticles(ctx, in))

	out, err := c.ShuffledArticles(ctx)
	require.NoError(t, err)
	require.Len(t, out, 20)

	seen := make(map[int64]bool, len(out))
	for _, a := range out {
		seen[a.ID] = true
	}
	assert.Len(t, seen, 20)
}

func TestBlogsRoundTrip(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.ReplaceBlogs(ctx, []backend.Blog{
		{ID: 1, Title: "Launch notes", Content: "we shipped", CreatedAt: day(1)},
		{ID: 2, Title: "Roadmap", Content: "next quarter", CreatedAt: day(2)},
	}))

	blogs, err := c.Blogs(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "Roadmap", blogs[0].Title)

	hits, err := c.SearchBlogs(ctx, "shipped")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(1), hits[0].ID)
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", FileName)
	c, err := Open(path)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Articles(context.Background())
	assert.NoError(t, err)
}
