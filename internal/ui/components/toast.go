// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/digitalbiz/linkdeck/internal/ui/styles"
)

// =============================================================================
// TOAST NOTIFICATIONS
// =============================================================================

// ToastLevel classifies a toast for styling.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

// DefaultToastDuration is how long a toast stays on screen.
const DefaultToastDuration = 4 * time.Second

// ToastExpiredMsg dismisses a toast after its duration.
type ToastExpiredMsg struct {
	ID int
}

// Toast is a transient one-line notification shown above the status bar.
type Toast struct {
	id      int
	level   ToastLevel
	message string
	visible bool
}

// NewToast creates an empty, hidden toast.
func NewToast() Toast {
	return Toast{}
}

// Show displays a message and returns the command that expires it.
func (t *Toast) Show(level ToastLevel, message string) tea.Cmd {
	t.id++
	t.level = level
	t.message = message
	t.visible = true

	id := t.id
	return tea.Tick(DefaultToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Update handles expiry messages. Stale expiries from earlier toasts are
// ignored so a newer toast keeps its full duration.
func (t *Toast) Update(msg tea.Msg) {
	if expired, ok := msg.(ToastExpiredMsg); ok && expired.ID == t.id {
		t.visible = false
	}
}

// Dismiss hides the toast immediately.
func (t *Toast) Dismiss() {
	t.visible = false
}

// Visible reports whether the toast should be rendered.
func (t *Toast) Visible() bool {
	return t.visible
}

// View renders the toast at the given width.
func (t *Toast) View(width int) string {
	if !t.visible {
		return ""
	}

	// Truncate before styling so ANSI sequences don't skew the width math.
	message := TruncateWidth(t.message, width-7)

	var line string
	switch t.level {
	case ToastSuccess:
		line = styles.RenderSuccess(message)
	case ToastError:
		line = styles.RenderError(message)
	default:
		line = styles.RenderInfo(message)
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Render(line)
}
