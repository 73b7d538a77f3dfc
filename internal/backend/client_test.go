// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListArticles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/ref_article", r.URL.Path)
		assert.Equal(t, "date.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":2,"title":"Newer","summary":"s2","url":"https://b","date":"2026-02-01T00:00:00Z"},
			{"id":1,"title":"Older","summary":"s1","url":"https://a","date":"2026-01-01T00:00:00Z"}
		]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "anon-key")
	articles, err := c.ListArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Newer", articles[0].Title)
	assert.Equal(t, int64(1), articles[1].ID)
}

func TestGetTemplate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/template", r.URL.Path)
		assert.Equal(t, "eq.weekly", r.URL.Query().Get("template_name"))
		w.Write([]byte(`[{"id":7,"template_name":"weekly","content":"Hello {{topic}}"}]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "k")
	tmpl, err := c.GetTemplate(context.Background(), "weekly")
	require.NoError(t, err)
	assert.Equal(t, "weekly", tmpl.Name)
	assert.Equal(t, "Hello {{topic}}", tmpl.Content)
}

func TestGetTemplateNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "k")
	_, err := c.GetTemplate(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTemplate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "updated body", body["content"])

		w.Write([]byte(`[{"id":7,"template_name":"weekly","content":"updated body"}]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "k")
	tmpl, err := c.UpdateTemplate(context.Background(), "weekly", "updated body")
	require.NoError(t, err)
	assert.Equal(t, "updated body", tmpl.Content)
}

func TestUpdatePostStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/v1/schedulepost", r.URL.Path)
		assert.Equal(t, "eq.42", r.URL.Query().Get("id"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "approved", body["status"])

		w.Write([]byte(`[{"id":42,"post":"draft","status":"approved","created_at":"2026-03-01T00:00:00Z"}]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "k")
	post, err := c.UpdatePostStatus(context.Background(), 42, StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, post.Status)
}

func TestUpdatePostStatusRejectsUnknown(t *testing.T) {
	c := NewClient("http://example.invalid", "k")
	_, err := c.UpdatePostStatus(context.Background(), 1, PostStatus("archived"))
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestAPIErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	}))
	defer server.Close()

	c := NewClient(server.URL, "k")
	_, err := c.ListQueue(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Contains(t, apiErr.Message, "permission denied")
}

func TestNotConfigured(t *testing.T) {
	c := NewClient("", "")
	_, err := c.ListArticles(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestPostStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusDeclined.Valid())
	assert.False(t, PostStatus("archived").Valid())
}
