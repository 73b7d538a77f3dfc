// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/digitalbiz/linkdeck/internal/ui/styles"
)

// =============================================================================
// TYPING SPINNER
// =============================================================================

// TypingSpinner animates while the agent is composing a reply.
type TypingSpinner struct {
	spinner spinner.Model
	label   string
	active  bool
}

// NewTypingSpinner creates the spinner used in the chat view.
func NewTypingSpinner() TypingSpinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Cyan)
	return TypingSpinner{
		spinner: s,
		label:   "Agent is typing",
	}
}

// Start activates the spinner and returns its tick command.
func (t *TypingSpinner) Start() tea.Cmd {
	t.active = true
	return t.spinner.Tick
}

// Stop deactivates the spinner.
func (t *TypingSpinner) Stop() {
	t.active = false
}

// Active reports whether the spinner is animating.
func (t *TypingSpinner) Active() bool {
	return t.active
}

// Update advances the animation while active.
func (t *TypingSpinner) Update(msg tea.Msg) tea.Cmd {
	if !t.active {
		return nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return cmd
}

// View renders the spinner line, or "" when inactive.
func (t *TypingSpinner) View() string {
	if !t.active {
		return ""
	}
	return t.spinner.View() + " " + styles.Help.Render(t.label+"...")
}
