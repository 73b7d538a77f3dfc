// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package relay

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/digitalbiz/linkdeck/internal/model"
)

// Configuration constants for the webhook relay.
const (
	// DefaultTimeout is the default timeout for webhook requests.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit

	// ErrorTurnText is the transcript content recorded when the webhook
	// cannot be reached or returns an unusable reply.
	ErrorTurnText = "Error: Could not reach the server. Please try again."
)

// Shared HTTP client with connection pooling for all webhook requests.
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

// Error variables for common relay errors.
var (
	// ErrNotConfigured indicates no webhook URL is set.
	ErrNotConfigured = errors.New("webhook URL not configured")

	// ErrEmptyMessage indicates the outgoing content was empty.
	ErrEmptyMessage = errors.New("empty message")
)

// RelayError represents a failed webhook exchange.
type RelayError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *RelayError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("webhook error (HTTP %d): %s", e.Status, e.Message)
	}
	return "webhook error: " + e.Message
}

// Request is the JSON body posted to the webhook.
type Request struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	Timestamp string `json:"timestamp"`
}

// Client posts user turns to the automation webhook.
//
// The client itself places no limit on concurrent requests. Single flight
// is a per-lane discipline owned by the caller: the chat view blocks its
// input while a primary send is pending, and may release that lane (the
// typing ceiling) while the request is still on the wire. A send issued
// after such a release simply opens a new request; the stale-response
// session check at append time keeps the transcript correct.
type Client struct {
	webhookURL string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a relay client for the given webhook URL.
func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: strings.TrimSpace(webhookURL),
		httpClient: sharedHTTPClient,
		now:        time.Now,
	}
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

// IsConfigured returns true if a webhook URL is set.
func (c *Client) IsConfigured() bool {
	return c.webhookURL != ""
}

// Send posts content to the webhook under the given session and returns the
// resulting agent turn.
//
// A turn is always returned for a non-empty message: the normalized reply on
// success, or a fixed error turn when the exchange fails. The error, when
// non-nil alongside a turn, describes the failure for logging; the turn is
// the user-facing surface. Send makes exactly one attempt.
func (c *Client) Send(ctx context.Context, content, sessionID string) (*model.Turn, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	text, err := c.exchange(ctx, content, sessionID)
	if err != nil {
		log.Printf("relay: send failed: %v", err)
		turn := model.NewAgentTurn(ErrorTurnText, sessionID)
		return &turn, err
	}

	turn := model.NewAgentTurn(text, sessionID)
	return &turn, nil
}

// exchange performs the single webhook round trip and normalizes the reply.
func (c *Client) exchange(ctx context.Context, content, sessionID string) (string, error) {
	reqBody := Request{
		Message:   content,
		SessionID: sessionID,
		Timestamp: c.now().UTC().Format(time.RFC3339),
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "linkdeck/0.1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", &RelayError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	text, err := Normalize(body)
	if err != nil {
		return "", fmt.Errorf("unusable reply: %w", err)
	}
	return text, nil
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}
