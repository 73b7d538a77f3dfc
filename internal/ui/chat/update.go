// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digitalbiz/linkdeck/internal/storage"
	"github.com/digitalbiz/linkdeck/internal/ui/components"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case RelayReplyMsg:
		return m.handleRelayReply(msg)

	case TypingCeilingMsg:
		return m.handleTypingCeiling(msg)

	case UploadResultMsg:
		return m.handleUploadResult(msg)

	case components.ToastExpiredMsg:
		m.toast.Update(msg)
		return m, nil
	}

	if cmd := m.spinner.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.sending {
			return m, nil
		}
		content := strings.TrimSpace(m.input.Value())
		if content == "" {
			return m, nil
		}
		if strings.HasPrefix(content, "/") {
			return m.handleCommand(content)
		}
		return m, m.submit(content)

	case "esc":
		m.toast.Dismiss()
		return m, nil

	case "pgup":
		m.viewport.HalfViewUp()
		return m, nil

	case "pgdown":
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleCommand runs slash commands typed into the input.
func (m Model) handleCommand(content string) (Model, tea.Cmd) {
	cmd, arg, _ := strings.Cut(content, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/new":
		m.input.SetValue("")
		return m, tea.Batch(m.rotateSession(), m.toast.Show(components.ToastInfo, "Started a new session"))

	case "/session":
		m.input.SetValue("")
		return m, m.toast.Show(components.ToastInfo, "Session "+m.sessionID)

	case "/upload":
		if arg == "" {
			return m, m.toast.Show(components.ToastError, "Usage: /upload <image path>")
		}
		m.input.SetValue("")
		return m, tea.Batch(
			m.uploadCmd(arg),
			m.toast.Show(components.ToastInfo, "Uploading "+arg+"..."),
		)

	case "/help":
		m.input.SetValue("")
		return m, m.toast.Show(components.ToastInfo, "/new  /session  /upload <path>")

	default:
		return m, m.toast.Show(components.ToastError, "Unknown command: "+cmd)
	}
}

// handleRelayReply appends the agent turn, dropping it when the session has
// rotated since the send.
func (m Model) handleRelayReply(msg RelayReplyMsg) (Model, tea.Cmd) {
	m.unblock()

	var cmds []tea.Cmd
	if msg.Turn != nil {
		if m.transcript.Append(*msg.Turn, m.sessionID) {
			m.refreshViewport()
			m.viewport.GotoBottom()
		}
	}
	// A failed exchange already surfaced as the fixed error turn; a toast
	// is only needed when the send was rejected with no turn at all.
	if msg.Err != nil && msg.Turn == nil {
		cmds = append(cmds, m.toast.Show(components.ToastError, msg.Err.Error()))
	}
	return m, tea.Batch(cmds...)
}

// handleTypingCeiling force-unblocks the input when the reply wait has gone
// on too long. The reply itself is still appended if it arrives later under
// the same session.
func (m Model) handleTypingCeiling(msg TypingCeilingMsg) (Model, tea.Cmd) {
	if msg.Seq != m.ceilingSeq || !m.sending {
		return m, nil
	}
	m.unblock()
	return m, m.toast.Show(components.ToastError, "The agent is taking a while. You can keep typing.")
}

// handleUploadResult relays the uploaded image's markdown embed as if the
// user had typed it. The upload lane dispatches directly so the embed still
// goes out when a typed message is pending.
func (m Model) handleUploadResult(msg UploadResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		return m, m.toast.Show(components.ToastError, "Upload failed: "+msg.Err.Error())
	}

	embed := storage.Markdown(msg.Name, msg.URL)
	return m, tea.Batch(
		m.dispatch(embed),
		m.toast.Show(components.ToastSuccess, "Uploaded "+msg.Name),
	)
}
