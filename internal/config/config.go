// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/digitalbiz/linkdeck/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete linkdeck configuration.
type Config struct {
	Version string `toml:"version"`

	// Agent webhook configuration
	Agent AgentConfig `toml:"agent"`

	// Supabase backend configuration
	Backend BackendConfig `toml:"backend"`

	// Attachment storage configuration
	Storage StorageConfig `toml:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// AgentConfig contains the automation webhook settings.
type AgentConfig struct {
	// WebhookURL is the chat webhook endpoint.
	WebhookURL string `toml:"webhook_url"`
	// TimeoutSecs is the request timeout for a single webhook call.
	TimeoutSecs int `toml:"timeout_secs"`
	// TypingCeilingSecs force-unblocks the chat if no reply lands in time.
	TypingCeilingSecs int `toml:"typing_ceiling_secs"`
}

// BackendConfig contains the Supabase REST settings.
type BackendConfig struct {
	// URL is the Supabase project URL.
	URL string `toml:"url"`
	// APIKey authenticates REST and storage calls.
	APIKey string `toml:"api_key"`
	// RequestsPerSecond throttles REST calls.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// StorageConfig contains attachment upload settings.
type StorageConfig struct {
	// Bucket is the storage bucket for attachments.
	Bucket string `toml:"bucket"`
	// UploadPrefix is the object key prefix inside the bucket.
	UploadPrefix string `toml:"upload_prefix"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark" or "light".
	Theme string `toml:"theme"`
	// CompactMode uses a more compact layout.
	CompactMode bool `toml:"compact_mode"`
	// ShowTimestamps displays turn timestamps in the transcript.
	ShowTimestamps bool `toml:"show_timestamps"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Agent: AgentConfig{
			WebhookURL:        "",
			TimeoutSecs:       60,
			TypingCeilingSecs: 30,
		},

		Backend: BackendConfig{
			URL:               "",
			APIKey:            "",
			RequestsPerSecond: 5,
		},

		Storage: StorageConfig{
			Bucket:       "dbtdigi",
			UploadPrefix: "chat-attachments",
		},

		UI: UIConfig{
			Theme:          "dark",
			CompactMode:    false,
			ShowTimestamps: true,
		},
	}
}

// =============================================================================
// PATH HELPERS
// =============================================================================

// StateDir returns the linkdeck state directory path.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".linkdeck"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// StatePath returns the path of a file inside the state directory.
func StatePath(name string) (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// EnsureStateDir ensures the state directory exists.
func EnsureStateDir() error {
	dir, err := StateDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ensureSecurePermissions fixes permissions on the config file. It holds the
// backend key, so anything wider than 0600 gets tightened.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config file, falling back to
// defaults when no file exists. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific TOML file with full
// validation.
func LoadFromPath(path string) (*Config, error) {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides overlays environment variables onto the config.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("LINKDECK_WEBHOOK_URL"); v != "" {
		c.Agent.WebhookURL = v
	}
	if v := os.Getenv("LINKDECK_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("LINKDECK_BACKEND_KEY"); v != "" {
		c.Backend.APIKey = v
	}
	if v := os.Getenv("LINKDECK_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil && rps > 0 {
			c.Backend.RequestsPerSecond = rps
		}
	}
}

// SetDefaults fills in any zero values with defaults.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Agent.TimeoutSecs <= 0 {
		c.Agent.TimeoutSecs = defaults.Agent.TimeoutSecs
	}
	if c.Agent.TypingCeilingSecs <= 0 {
		c.Agent.TypingCeilingSecs = defaults.Agent.TypingCeilingSecs
	}
	if c.Backend.RequestsPerSecond <= 0 {
		c.Backend.RequestsPerSecond = defaults.Backend.RequestsPerSecond
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = defaults.Storage.Bucket
	}
	if c.Storage.UploadPrefix == "" {
		c.Storage.UploadPrefix = defaults.Storage.UploadPrefix
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Agent.WebhookURL != "" {
		u, err := url.Parse(c.Agent.WebhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("agent.webhook_url is not a valid http(s) URL: %q", c.Agent.WebhookURL)
		}
	}
	if c.Backend.URL != "" {
		u, err := url.Parse(c.Backend.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("backend.url is not a valid http(s) URL: %q", c.Backend.URL)
		}
	}
	if c.UI.Theme != "dark" && c.UI.Theme != "light" && c.UI.Theme != "" {
		return fmt.Errorf("ui.theme must be \"dark\" or \"light\", got %q", c.UI.Theme)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to a TOML file with 0600 permissions.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalCfg != nil {
		defer globalMu.RUnlock()
		return globalCfg
	}
	globalMu.RUnlock()

	cfg, err := Load()
	if err != nil {
		cfg = Default()
	}
	SetGlobal(cfg)
	return cfg
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}
