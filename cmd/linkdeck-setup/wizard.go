// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/digitalbiz/linkdeck/internal/config"
	"github.com/digitalbiz/linkdeck/internal/ui/styles"
)

// =============================================================================
// WIZARD STEPS
// =============================================================================

type step int

const (
	stepWebhook step = iota
	stepBackendURL
	stepBackendKey
	stepTheme
	stepDone
)

var stepLabels = map[step]string{
	stepWebhook:    "Agent webhook URL",
	stepBackendURL: "Backend (Supabase) URL",
	stepBackendKey: "Backend API key",
	stepTheme:      "Theme (dark or light)",
}

var stepHints = map[step]string{
	stepWebhook:    "The n8n chat webhook your automation agent listens on.",
	stepBackendURL: "The Supabase project URL holding articles, blogs, and templates.",
	stepBackendKey: "Service or anon key. Stored with owner-only permissions.",
	stepTheme:      "Match your terminal background.",
}

// =============================================================================
// STYLES
// =============================================================================

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary).
			Bold(true).
			Padding(0, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Padding(0, 2)

	errStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Padding(0, 2)

	doneStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true).
			Padding(1, 2)
)

// =============================================================================
// MODEL
// =============================================================================

// wizard is the interactive setup flow. Each step edits one field of
// the config, enter advances, esc goes back.
type wizard struct {
	cfg     *config.Config
	step    step
	input   textinput.Model
	errText string
	saved   string
}

func newWizard() *wizard {
	cfg := loadOrDefault()

	input := textinput.New()
	input.CharLimit = 512
	input.Width = 64
	input.Focus()

	w := &wizard{cfg: cfg, input: input}
	w.loadStep()
	return w
}

// loadStep primes the input with the current value for the step.
func (w *wizard) loadStep() {
	w.errText = ""
	w.input.EchoMode = textinput.EchoNormal
	switch w.step {
	case stepWebhook:
		w.input.SetValue(w.cfg.Agent.WebhookURL)
		w.input.Placeholder = "https://automation.example.com/webhook/chat"
	case stepBackendURL:
		w.input.SetValue(w.cfg.Backend.URL)
		w.input.Placeholder = "https://xyzcompany.supabase.co"
	case stepBackendKey:
		w.input.SetValue(w.cfg.Backend.APIKey)
		w.input.Placeholder = "service role or anon key"
		w.input.EchoMode = textinput.EchoPassword
	case stepTheme:
		w.input.SetValue(w.cfg.UI.Theme)
		w.input.Placeholder = "dark"
	}
	w.input.CursorEnd()
}

// commitStep validates and stores the input for the current step.
func (w *wizard) commitStep() bool {
	value := strings.TrimSpace(w.input.Value())
	switch w.step {
	case stepWebhook:
		w.cfg.Agent.WebhookURL = value
	case stepBackendURL:
		w.cfg.Backend.URL = value
	case stepBackendKey:
		w.cfg.Backend.APIKey = value
	case stepTheme:
		if value == "" {
			value = "dark"
		}
		if value != "dark" && value != "light" {
			w.errText = "Theme must be dark or light."
			return false
		}
		w.cfg.UI.Theme = value
	}

	w.cfg.SetDefaults()
	if err := w.cfg.Validate(); err != nil {
		w.errText = err.Error()
		return false
	}
	return true
}

func (w *wizard) Init() tea.Cmd {
	return textinput.Blink
}

func (w *wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return w, tea.Quit

		case "esc":
			if w.step > stepWebhook && w.step < stepDone {
				w.step--
				w.loadStep()
			}
			return w, nil

		case "enter":
			if w.step == stepDone {
				return w, tea.Quit
			}
			if !w.commitStep() {
				return w, nil
			}
			w.step++
			if w.step == stepDone {
				if err := config.Save(w.cfg); err != nil {
					w.errText = err.Error()
					w.step--
					return w, nil
				}
				w.saved, _ = config.ConfigPath()
				return w, nil
			}
			w.loadStep()
			return w, nil
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *wizard) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("linkdeck setup"))
	b.WriteString("\n")

	if w.step == stepDone {
		b.WriteString(doneStyle.Render("Configuration saved to " + w.saved))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Run 'linkdeck' to start the dashboard. Press enter to exit."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(hintStyle.Render(fmt.Sprintf("Step %d of %d", int(w.step)+1, int(stepDone))))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(stepLabels[w.step]))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(stepHints[w.step]))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(w.input.View()))
	b.WriteString("\n")

	if w.errText != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(w.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter continue | esc back | ctrl+c quit"))
	b.WriteString("\n")
	return b.String()
}
