// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/digitalbiz/linkdeck/internal/backend"
)

// FileName is the cache database inside the state directory.
const FileName = "cache.db"

// Cache mirrors backend articles and blogs in a local SQLite database.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the cache database at the given path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	c := &Cache{db: db}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS articles (
		id         INTEGER PRIMARY KEY,
		title      TEXT NOT NULL,
		summary    TEXT NOT NULL DEFAULT '',
		url        TEXT NOT NULL DEFAULT '',
		date       TIMESTAMP,
		fetched_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_articles_date ON articles(date DESC);

	CREATE TABLE IF NOT EXISTS blogs (
		id         INTEGER PRIMARY KEY,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL DEFAULT '',
		url        TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP,
		fetched_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_blogs_created ON blogs(created_at DESC);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to init cache schema: %w", err)
	}
	return nil
}

// =============================================================================
// ARTICLES
// =============================================================================

// ReplaceArticles swaps the cached article set for a fresh backend snapshot.
func (c *Cache) ReplaceArticles(ctx context.Context, articles []backend.Article) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM articles"); err != nil {
		return fmt.Errorf("failed to clear articles: %w", err)
	}

	now := time.Now()
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO articles (id, title, summary, url, date, fetched_at) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range articles {
		if _, err := stmt.ExecContext(ctx, a.ID, a.Title, a.Summary, a.URL, a.Date, now); err != nil {
			return fmt.Errorf("failed to insert article %d: %w", a.ID, err)
		}
	}
	return tx.Commit()
}

// Articles returns cached articles, newest first.
func (c *Cache) Articles(ctx context.Context) ([]backend.Article, error) {
	return c.queryArticles(ctx,
		"SELECT id, title, summary, url, date FROM articles ORDER BY date DESC")
}

// SearchArticles returns cached articles whose title or summary contains the
// query, newest first.
func (c *Cache) SearchArticles(ctx context.Context, query string) ([]backend.Article, error) {
	like := "%" + query + "%"
	return c.queryArticles(ctx,
		"SELECT id, title, summary, url, date FROM articles WHERE title LIKE ? OR summary LIKE ? ORDER BY date DESC",
		like, like)
}

// ShuffledArticles returns the cached articles in random order, for surfacing
// a varied suggestion instead of always the newest item.
func (c *Cache) ShuffledArticles(ctx context.Context) ([]backend.Article, error) {
	articles, err := c.Articles(ctx)
	if err != nil {
		return nil, err
	}
	rand.Shuffle(len(articles), func(i, j int) {
		articles[i], articles[j] = articles[j], articles[i]
	})
	return articles, nil
}

func (c *Cache) queryArticles(ctx context.Context, q string, args ...any) ([]backend.Article, error) {
	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("article query failed: %w", err)
	}
	defer rows.Close()

	var out []backend.Article
	for rows.Next() {
		var a backend.Article
		var date sql.NullTime
		if err := rows.Scan(&a.ID, &a.Title, &a.Summary, &a.URL, &date); err != nil {
			return nil, fmt.Errorf("article scan failed: %w", err)
		}
		if date.Valid {
			a.Date = date.Time
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// =============================================================================
// BLOGS
// =============================================================================

// ReplaceBlogs swaps the cached blog set for a fresh backend snapshot.
func (c *Cache) ReplaceBlogs(ctx context.Context, blogs []backend.Blog) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM blogs"); err != nil {
		return fmt.Errorf("failed to clear blogs: %w", err)
	}

	now := time.Now()
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO blogs (id, title, content, url, created_at, fetched_at) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range blogs {
		if _, err := stmt.ExecContext(ctx, b.ID, b.Title, b.Content, b.URL, b.CreatedAt, now); err != nil {
			return fmt.Errorf("failed to insert blog %d: %w", b.ID, err)
		}
	}
	return tx.Commit()
}

// Blogs returns cached blogs, newest first.
func (c *Cache) Blogs(ctx context.Context) ([]backend.Blog, error) {
	return c.queryBlogs(ctx,
		"SELECT id, title, content, url, created_at FROM blogs ORDER BY created_at DESC")
}

// SearchBlogs returns cached blogs whose title or content contains the query.
func (c *Cache) SearchBlogs(ctx context.Context, query string) ([]backend.Blog, error) {
	like := "%" + query + "%"
	return c.queryBlogs(ctx,
		"SELECT id, title, content, url, created_at FROM blogs WHERE title LIKE ? OR content LIKE ? ORDER BY created_at DESC",
		like, like)
}

func (c *Cache) queryBlogs(ctx context.Context, q string, args ...any) ([]backend.Blog, error) {
	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("blog query failed: %w", err)
	}
	defer rows.Close()

	var out []backend.Blog
	for rows.Next() {
		var b backend.Blog
		var created sql.NullTime
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.URL, &created); err != nil {
			return nil, fmt.Errorf("blog scan failed: %w", err)
		}
		if created.Valid {
			b.CreatedAt = created.Time
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
