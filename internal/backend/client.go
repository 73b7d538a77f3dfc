// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Configuration constants for the Supabase REST client.
const (
	// DefaultTimeout is the default timeout for REST requests.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond throttles calls against the project.
	DefaultRequestsPerSecond = 5

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// Shared HTTP client with connection pooling for all REST requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
	Timeout: DefaultTimeout,
}

// Error variables for common backend errors.
var (
	// ErrNotConfigured indicates the project URL or API key is missing.
	ErrNotConfigured = errors.New("backend not configured")

	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("row not found")

	// ErrBadStatus indicates an unknown scheduled-post status.
	ErrBadStatus = errors.New("invalid post status")
)

// APIError represents an error response from the REST interface.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("backend error (HTTP %d): %s", e.Status, e.Message)
}

// Client talks to the Supabase PostgREST endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a backend client for the given project URL and key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: sharedHTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), DefaultRequestsPerSecond),
	}
}

// WithRateLimit sets the request throttle in requests per second.
func (c *Client) WithRateLimit(rps float64) *Client {
	if rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps)+1)
	}
	return c
}

// WithTimeout sets the request timeout. The client switches to a private
// http.Client so the shared pool's timeout is untouched.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient = &http.Client{
		Transport: sharedHTTPClient.Transport,
		Timeout:   timeout,
	}
	return c
}

// IsConfigured returns true when both project URL and key are set.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// =============================================================================
// ARTICLES AND BLOGS
// =============================================================================

// ListArticles returns curated articles, newest first.
func (c *Client) ListArticles(ctx context.Context) ([]Article, error) {
	var rows []Article
	err := c.get(ctx, "ref_article", url.Values{
		"select": {"*"},
		"order":  {"date.desc"},
	}, &rows)
	return rows, err
}

// ListBlogs returns company blog posts, newest first.
func (c *Client) ListBlogs(ctx context.Context) ([]Blog, error) {
	var rows []Blog
	err := c.get(ctx, "blog", url.Values{
		"select": {"*"},
		"order":  {"created_at.desc"},
	}, &rows)
	return rows, err
}

// ListSources returns the feeds the article scraper watches.
func (c *Client) ListSources(ctx context.Context) ([]Source, error) {
	var rows []Source
	err := c.get(ctx, "source", url.Values{"select": {"*"}}, &rows)
	return rows, err
}

// =============================================================================
// TEMPLATES
// =============================================================================

// ListTemplates returns all post templates.
func (c *Client) ListTemplates(ctx context.Context) ([]Template, error) {
	var rows []Template
	err := c.get(ctx, "template", url.Values{
		"select": {"*"},
		"order":  {"template_name.asc"},
	}, &rows)
	return rows, err
}

// GetTemplate returns a single template by name.
func (c *Client) GetTemplate(ctx context.Context, name string) (*Template, error) {
	var rows []Template
	err := c.get(ctx, "template", url.Values{
		"select":        {"*"},
		"template_name": {"eq." + name},
	}, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: template %q", ErrNotFound, name)
	}
	return &rows[0], nil
}

// UpdateTemplate replaces a template's content by name.
func (c *Client) UpdateTemplate(ctx context.Context, name, content string) (*Template, error) {
	var rows []Template
	err := c.patch(ctx, "template", url.Values{
		"template_name": {"eq." + name},
	}, map[string]any{"content": content}, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: template %q", ErrNotFound, name)
	}
	return &rows[0], nil
}

// =============================================================================
// SCHEDULED POSTS
// =============================================================================

// ListQueue returns scheduled posts, newest first.
func (c *Client) ListQueue(ctx context.Context) ([]ScheduledPost, error) {
	var rows []ScheduledPost
	err := c.get(ctx, "schedulepost", url.Values{
		"select": {"*"},
		"order":  {"created_at.desc"},
	}, &rows)
	return rows, err
}

// UpdatePostStatus moves a scheduled post through review.
func (c *Client) UpdatePostStatus(ctx context.Context, id int64, status PostStatus) (*ScheduledPost, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrBadStatus, status)
	}
	return c.patchPost(ctx, id, map[string]any{"status": status})
}

// UpdatePostBody rewrites the text of a scheduled post.
func (c *Client) UpdatePostBody(ctx context.Context, id int64, post string) (*ScheduledPost, error) {
	return c.patchPost(ctx, id, map[string]any{"post": post})
}

func (c *Client) patchPost(ctx context.Context, id int64, fields map[string]any) (*ScheduledPost, error) {
	var rows []ScheduledPost
	err := c.patch(ctx, "schedulepost", url.Values{
		"id": {"eq." + strconv.FormatInt(id, 10)},
	}, fields, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: post %d", ErrNotFound, id)
	}
	return &rows[0], nil
}

// =============================================================================
// REST PLUMBING
// =============================================================================

func (c *Client) get(ctx context.Context, table string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, table, query, nil, out)
}

func (c *Client) patch(ctx context.Context, table string, query url.Values, body any, out any) error {
	return c.do(ctx, http.MethodPatch, table, query, body, out)
}

func (c *Client) do(ctx context.Context, method, table string, query url.Values, body, out any) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	reqURL := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := readResponse(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	data, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(data)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return data, nil
}
