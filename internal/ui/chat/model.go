// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/digitalbiz/linkdeck/internal/intent"
	"github.com/digitalbiz/linkdeck/internal/model"
	"github.com/digitalbiz/linkdeck/internal/relay"
	"github.com/digitalbiz/linkdeck/internal/session"
	"github.com/digitalbiz/linkdeck/internal/storage"
	"github.com/digitalbiz/linkdeck/internal/ui/components"
)

// DefaultTypingCeiling force-unblocks the input when no reply has landed.
const DefaultTypingCeiling = 30 * time.Second

// Model is the chat view.
type Model struct {
	// Collaborators
	relay    *relay.Client
	uploader *storage.Uploader
	sessions *session.Store

	// Conversation state
	transcript *model.Transcript
	sessionID  string

	// Send state
	sending    bool
	ceilingSeq int
	ceiling    time.Duration

	// Widgets
	input    textinput.Model
	viewport viewport.Model
	spinner  components.TypingSpinner
	toast    components.Toast
	renderer *glamour.TermRenderer

	// Layout
	width  int
	height int
	ready  bool

	showTimestamps bool
}

// New creates the chat view. The session store must already hold an
// identifier (GetOrCreate has run).
func New(relayClient *relay.Client, uploader *storage.Uploader, sessions *session.Store) Model {
	input := textinput.New()
	input.Placeholder = "Message the agent... (/help for commands)"
	input.CharLimit = 4000
	input.Focus()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer = nil
	}

	return Model{
		relay:          relayClient,
		uploader:       uploader,
		sessions:       sessions,
		transcript:     model.NewTranscript(),
		sessionID:      sessions.GetOrCreate(),
		ceiling:        DefaultTypingCeiling,
		input:          input,
		spinner:        components.NewTypingSpinner(),
		toast:          components.NewToast(),
		renderer:       renderer,
		showTimestamps: true,
	}
}

// WithTypingCeiling overrides the reply-wait ceiling.
func (m Model) WithTypingCeiling(d time.Duration) Model {
	if d > 0 {
		m.ceiling = d
	}
	return m
}

// WithTimestamps toggles turn timestamps in the transcript.
func (m Model) WithTimestamps(show bool) Model {
	m.showTimestamps = show
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SessionID returns the active session identifier.
func (m Model) SessionID() string {
	return m.sessionID
}

// Sending reports whether a webhook exchange is in flight.
func (m Model) Sending() bool {
	return m.sending
}

// Transcript exposes the turn log for testing and export.
func (m Model) Transcript() *model.Transcript {
	return m.transcript
}

// SetSize updates the layout for a new terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// Header, input frame, status, spinner line.
	viewportHeight := height - 7
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(width, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = viewportHeight
	}
	m.input.Width = width - 6

	if m.renderer != nil {
		wrap := width - 4
		if wrap > 100 {
			wrap = 100
		}
		if wrap > 20 {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(wrap),
			)
			if err == nil {
				m.renderer = renderer
			}
		}
	}

	m.refreshViewport()
}

// =============================================================================
// SENDING
// =============================================================================

// SeedIntent starts a fresh conversation from a pending intent's seed
// prompt. Consuming an intent always rotates the session first so the
// agent has no memory of the prior thread.
func (m *Model) SeedIntent(in intent.Intent) tea.Cmd {
	rotated := m.rotateSession()
	return tea.Batch(rotated, m.submit(in.Seed()))
}

// submit sends typed input. The primary lane allows one pending exchange;
// further submissions are refused until a reply, the ceiling, or rotation
// unblocks it.
func (m *Model) submit(content string) tea.Cmd {
	if content == "" || m.sending {
		return nil
	}
	return m.dispatch(content)
}

// dispatch appends the user turn, blocks input, and starts the exchange.
// The upload lane calls it directly, so an embed can go out while a typed
// message is still pending.
func (m *Model) dispatch(content string) tea.Cmd {
	m.transcript.Append(model.NewUserTurn(content, m.sessionID), m.sessionID)
	m.refreshViewport()
	m.viewport.GotoBottom()

	m.sending = true
	m.ceilingSeq++
	m.input.SetValue("")
	m.input.Blur()

	return tea.Batch(
		m.sendCmd(content, m.sessionID),
		m.ceilingCmd(m.ceilingSeq),
		m.spinner.Start(),
	)
}

func (m *Model) sendCmd(content, sessionID string) tea.Cmd {
	client := m.relay
	return func() tea.Msg {
		turn, err := client.Send(context.Background(), content, sessionID)
		return RelayReplyMsg{Turn: turn, Err: err}
	}
}

func (m *Model) ceilingCmd(seq int) tea.Cmd {
	return tea.Tick(m.ceiling, func(time.Time) tea.Msg {
		return TypingCeilingMsg{Seq: seq}
	})
}

func (m *Model) uploadCmd(path string) tea.Cmd {
	uploader := m.uploader
	name := filepath.Base(path)
	return func() tea.Msg {
		url, err := uploader.UploadFile(context.Background(), path)
		return UploadResultMsg{Name: name, URL: url, Err: err}
	}
}

// rotateSession mints a new session and drops the transcript.
func (m *Model) rotateSession() tea.Cmd {
	m.sessionID = m.sessions.Rotate()
	m.transcript.Clear()
	m.unblock()
	m.refreshViewport()

	id := m.sessionID
	return func() tea.Msg {
		return SessionRotatedMsg{SessionID: id}
	}
}

// unblock re-enables the input after a reply, ceiling, or rotation.
func (m *Model) unblock() {
	m.sending = false
	m.spinner.Stop()
	m.input.Focus()
}
