// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/digitalbiz/linkdeck/internal/util"
)

// Configuration constants for attachment uploads.
const (
	// DefaultBucket is the Supabase storage bucket for uploads.
	DefaultBucket = "dbtdigi"

	// DefaultPrefix is the object key prefix for chat attachments.
	DefaultPrefix = "chat-attachments"

	// DefaultTimeout is the timeout for a single upload.
	DefaultTimeout = 30 * time.Second

	// MaxAttachmentSize caps how large an attachment may be.
	MaxAttachmentSize = 8 * 1024 * 1024 // 8MB
)

// Error variables for common upload errors.
var (
	// ErrNotConfigured indicates the storage endpoint or key is missing.
	ErrNotConfigured = errors.New("storage not configured")

	// ErrNotImage indicates the file is not a supported image type.
	ErrNotImage = errors.New("only image attachments are supported")

	// ErrTooLarge indicates the file exceeds MaxAttachmentSize.
	ErrTooLarge = errors.New("attachment too large")
)

// imageTypes maps accepted extensions to their content types.
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// UploadError represents a failed upload request.
type UploadError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed (HTTP %d): %s", e.Status, e.Message)
}

// Uploader pushes image files into a Supabase storage bucket.
type Uploader struct {
	baseURL    string
	apiKey     string
	bucket     string
	prefix     string
	httpClient *http.Client
	now        func() time.Time
}

// NewUploader creates an uploader for the given Supabase project URL and key.
func NewUploader(baseURL, apiKey string) *Uploader {
	return &Uploader{
		baseURL: strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		bucket:  DefaultBucket,
		prefix:  DefaultPrefix,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		now: time.Now,
	}
}

// WithBucket sets the target bucket.
func (u *Uploader) WithBucket(bucket string) *Uploader {
	if bucket != "" {
		u.bucket = bucket
	}
	return u
}

// WithPrefix sets the object key prefix.
func (u *Uploader) WithPrefix(prefix string) *Uploader {
	if prefix != "" {
		u.prefix = strings.Trim(prefix, "/")
	}
	return u
}

// IsConfigured returns true when both endpoint and key are set.
func (u *Uploader) IsConfigured() bool {
	return u.baseURL != "" && u.apiKey != ""
}

// UploadFile uploads an image from disk and returns its public URL.
func (u *Uploader) UploadFile(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	contentType, ok := imageTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotImage, ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat attachment: %w", err)
	}
	if info.Size() > MaxAttachmentSize {
		return "", fmt.Errorf("%w: %s", ErrTooLarge, util.FormatBytes(info.Size()))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read attachment: %w", err)
	}

	return u.Upload(ctx, data, ext, contentType)
}

// Upload pushes raw image bytes under a generated key and returns the public
// URL. One attempt, no retry.
func (u *Uploader) Upload(ctx context.Context, data []byte, ext, contentType string) (string, error) {
	if !u.IsConfigured() {
		return "", ErrNotConfigured
	}

	key := u.objectKey(ext)
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", u.baseURL, u.bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+u.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &UploadError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	return u.PublicURL(key), nil
}

// PublicURL returns the public URL for an object key in the bucket.
func (u *Uploader) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", u.baseURL, u.bucket, key)
}

// Markdown renders an uploaded image as a markdown embed for the outgoing
// message.
func Markdown(name, url string) string {
	return fmt.Sprintf("![%s](%s)", name, url)
}

// objectKey builds a collision-resistant key: prefix/unixms-rand.ext.
func (u *Uploader) objectKey(ext string) string {
	return fmt.Sprintf("%s/%d-%s%s", u.prefix, u.now().UnixMilli(), randomSuffix(), ext)
}

// randomSuffix returns a short random hex string.
func randomSuffix() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(b)
}
