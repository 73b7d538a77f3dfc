// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/digitalbiz/linkdeck/internal/model"
	"github.com/digitalbiz/linkdeck/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Header.Render("Chat"))
	b.WriteString(styles.Help.Render("  session " + shortID(m.sessionID)))
	b.WriteString("\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if spinner := m.spinner.View(); spinner != "" {
		b.WriteString(spinner)
	}
	b.WriteString("\n")

	if m.toast.Visible() {
		b.WriteString(m.toast.View(m.width))
		b.WriteString("\n")
	}

	inputStyle := styles.InputBox
	if !m.sending {
		inputStyle = styles.InputBoxFocused
	}
	b.WriteString(inputStyle.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(styles.Help.Render("enter send · /new session · /upload image · esc dismiss"))

	return b.String()
}

// refreshViewport rebuilds the transcript rendering.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for i, turn := range m.transcript.Turns() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderTurn(turn))
	}
	m.viewport.SetContent(b.String())
}

// renderTurn formats one turn with its label, timestamp, and body.
func (m *Model) renderTurn(turn model.Turn) string {
	var label, body string

	switch turn.Sender {
	case model.SenderUser:
		label = styles.UserLabel.Render(turn.Sender.DisplayName())
		body = styles.UserTurn.Render(turn.Content)
	default:
		label = styles.AgentLabel.Render(turn.Sender.DisplayName())
		body = styles.AgentTurn.Render(m.renderMarkdown(turn.Content))
	}

	header := label
	if m.showTimestamps {
		header += " " + styles.Timestamp.Render(turn.CreatedAt.Format("15:04"))
	}
	return header + "\n" + body + "\n"
}

// renderMarkdown renders agent markdown, falling back to the raw text.
func (m *Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// shortID trims a session identifier for the header.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
