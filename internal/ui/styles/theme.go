// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// SHARED STYLES
// =============================================================================

// Header renders the top bar of every view.
var Header = lipgloss.NewStyle().
	Foreground(Cyan).
	Bold(true).
	Padding(0, 1)

// StatusBar renders the bottom status line.
var StatusBar = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Background(SurfaceDim).
	Padding(0, 1)

// Help renders key hints.
var Help = lipgloss.NewStyle().
	Foreground(TextMuted)

// =============================================================================
// CHAT STYLES
// =============================================================================

// UserLabel renders the "You" label on user turns.
var UserLabel = lipgloss.NewStyle().
	Foreground(Blue).
	Bold(true)

// AgentLabel renders the "Agent" label on agent turns.
var AgentLabel = lipgloss.NewStyle().
	Foreground(AgentBubbleBorder).
	Bold(true)

// UserTurn renders the body of a user turn.
var UserTurn = lipgloss.NewStyle().
	Foreground(UserBubbleFg).
	BorderStyle(lipgloss.NormalBorder()).
	BorderLeft(true).
	BorderForeground(UserBubbleBorder).
	PaddingLeft(1)

// AgentTurn renders the body of an agent turn.
var AgentTurn = lipgloss.NewStyle().
	Foreground(AgentBubbleFg).
	BorderStyle(lipgloss.NormalBorder()).
	BorderLeft(true).
	BorderForeground(AgentBubbleBorder).
	PaddingLeft(1)

// Timestamp renders turn timestamps.
var Timestamp = lipgloss.NewStyle().
	Foreground(TextMuted)

// InputBox frames the chat input.
var InputBox = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(Overlay).
	Padding(0, 1)

// InputBoxFocused frames the chat input while it accepts typing.
var InputBoxFocused = InputBox.
	BorderForeground(Cyan)

// =============================================================================
// LIST STYLES
// =============================================================================

// ListTitle renders a list view's title.
var ListTitle = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true).
	Padding(0, 1)

// SelectedItem highlights the cursor row in a list.
var SelectedItem = lipgloss.NewStyle().
	Foreground(TextInverse).
	Background(Blue).
	Bold(true)

// StatusPending colors the pending review state.
var StatusPending = lipgloss.NewStyle().Foreground(Amber)

// StatusApproved colors the approved review state.
var StatusApproved = lipgloss.NewStyle().Foreground(Emerald)

// StatusDeclined colors the declined review state.
var StatusDeclined = lipgloss.NewStyle().Foreground(Rose)

// =============================================================================
// TERMINAL DETECTION
// =============================================================================

// HasDarkBackground reports whether the terminal uses a dark background.
// Used to pick the matching glamour style for markdown rendering.
func HasDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ColorProfile returns the terminal's color capability.
func ColorProfile() termenv.Profile {
	return termenv.ColorProfile()
}
