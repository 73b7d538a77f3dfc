// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
)

func TestUploadFile(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dir := t.TempDir()
	file := filepath.Join(dir, "chart.png")
	if err := os.WriteFile(file, []byte("png-bytes"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	u := NewUploader(server.URL, "service-key")
	url, err := u.UploadFile(context.Background(), file)
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}

	keyRe := regexp.MustCompile(`^/storage/v1/object/dbtdigi/chat-attachments/\d+-[0-9a-f]{8}\.png$`)
	if !keyRe.MatchString(gotPath) {
		t.Errorf("upload path = %q, want match %q", gotPath, keyRe)
	}
	if gotAuth != "Bearer service-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotType != "image/png" {
		t.Errorf("Content-Type = %q", gotType)
	}
	if string(gotBody) != "png-bytes" {
		t.Errorf("body = %q", gotBody)
	}

	wantPrefix := server.URL + "/storage/v1/object/public/dbtdigi/chat-attachments/"
	if !strings.HasPrefix(url, wantPrefix) || !strings.HasSuffix(url, ".png") {
		t.Errorf("public URL = %q, want prefix %q", url, wantPrefix)
	}
}

func TestUploadFileRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.pdf")
	if err := os.WriteFile(file, []byte("%PDF"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	u := NewUploader("http://example.invalid", "k")
	if _, err := u.UploadFile(context.Background(), file); !errors.Is(err, ErrNotImage) {
		t.Errorf("err = %v, want ErrNotImage", err)
	}
}

func TestUploadSingleAttemptOnFailure(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "bucket missing", http.StatusNotFound)
	}))
	defer server.Close()

	u := NewUploader(server.URL, "k")
	_, err := u.Upload(context.Background(), []byte("x"), ".png", "image/png")

	var upErr *UploadError
	if !errors.As(err, &upErr) || upErr.Status != http.StatusNotFound {
		t.Errorf("err = %v, want UploadError 404", err)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("endpoint hit %d times, want 1", n)
	}
}

func TestUploadNotConfigured(t *testing.T) {
	u := NewUploader("", "")
	if _, err := u.Upload(context.Background(), []byte("x"), ".png", "image/png"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestMarkdown(t *testing.T) {
	got := Markdown("chart.png", "https://cdn.example/chart.png")
	if got != "![chart.png](https://cdn.example/chart.png)" {
		t.Errorf("Markdown = %q", got)
	}
}
