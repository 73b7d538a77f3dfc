// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digitalbiz/linkdeck/internal/config"
	"github.com/digitalbiz/linkdeck/internal/ui/styles"
	"github.com/digitalbiz/linkdeck/internal/util"
)

// settingsView shows the effective configuration. Edits happen in the config
// file; the watcher picks them up live.
type settingsView struct {
	cfg    *config.Config
	width  int
	height int
}

func newSettingsView(cfg *config.Config) settingsView {
	return settingsView{cfg: cfg}
}

func (v *settingsView) setSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *settingsView) update(tea.Msg) tea.Cmd {
	return nil
}

// setConfig swaps in a hot-reloaded config.
func (v *settingsView) setConfig(cfg *config.Config) {
	v.cfg = cfg
}

func (v *settingsView) view() string {
	var b strings.Builder
	b.WriteString(styles.ListTitle.Render("Settings"))
	b.WriteString("\n")

	if v.cfg == nil {
		b.WriteString(styles.Help.Render("  No configuration loaded.") + "\n")
		return b.String()
	}

	row := func(label, value string) {
		b.WriteString("  " + styles.Help.Render(label) + " " + value + "\n")
	}

	row("Webhook     ", orUnset(v.cfg.Agent.WebhookURL))
	row("Timeout     ", util.IntToString(v.cfg.Agent.TimeoutSecs)+"s")
	row("Typing cap  ", util.IntToString(v.cfg.Agent.TypingCeilingSecs)+"s")
	b.WriteString("\n")
	row("Backend URL ", orUnset(v.cfg.Backend.URL))
	row("Backend key ", maskKey(v.cfg.Backend.APIKey))
	b.WriteString("\n")
	row("Bucket      ", v.cfg.Storage.Bucket)
	row("Upload path ", v.cfg.Storage.UploadPrefix)
	b.WriteString("\n")
	row("Theme       ", v.cfg.UI.Theme)

	if path, err := config.ConfigPath(); err == nil {
		b.WriteString("\n")
		b.WriteString(styles.Help.Render("  Edit " + path + " — changes apply live."))
	}
	return b.String()
}

func orUnset(s string) string {
	if s == "" {
		return styles.RenderWarning("not set")
	}
	return s
}

// maskKey hides the key body, showing only its length.
func maskKey(key string) string {
	if key == "" {
		return styles.RenderWarning("not set")
	}
	return "[set, " + util.IntToString(len(key)) + " chars]"
}
