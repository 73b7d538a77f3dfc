// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digitalbiz/linkdeck/internal/intent"
	"github.com/digitalbiz/linkdeck/internal/model"
	"github.com/digitalbiz/linkdeck/internal/relay"
	"github.com/digitalbiz/linkdeck/internal/session"
	"github.com/digitalbiz/linkdeck/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session"))
	m := New(relay.NewClient("http://example.invalid"), storage.NewUploader("", ""), sessions)
	m.SetSize(80, 24)
	return m
}

func TestSubmitAppendsUserTurnAndBlocks(t *testing.T) {
	m := newTestModel(t)

	cmd := m.submit("hello agent")
	if cmd == nil {
		t.Fatal("expected a command batch")
	}
	if !m.Sending() {
		t.Error("expected sending state")
	}

	last, ok := m.Transcript().LastTurn()
	if !ok || last.Content != "hello agent" {
		t.Fatalf("last turn = %+v", last)
	}
	if last.Sender != model.SenderUser {
		t.Errorf("Sender = %q, want user", last.Sender)
	}
	if last.SessionID != m.SessionID() {
		t.Errorf("turn session = %q, want %q", last.SessionID, m.SessionID())
	}

	// A second submit while blocked is a no-op.
	if cmd := m.submit("again"); cmd != nil {
		t.Error("expected submit to be refused while sending")
	}
	if m.Transcript().Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Transcript().Len())
	}
}

func TestRelayReplyAppendsAndUnblocks(t *testing.T) {
	m := newTestModel(t)
	m.submit("hi")

	turn := model.NewAgentTurn("hello back", m.SessionID())
	m, _ = m.handleRelayReply(RelayReplyMsg{Turn: &turn})

	if m.Sending() {
		t.Error("expected input unblocked")
	}
	last, _ := m.Transcript().LastTurn()
	if last.Content != "hello back" {
		t.Errorf("last turn = %q", last.Content)
	}
	if m.Transcript().Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Transcript().Len())
	}
}

func TestLateReplyDroppedAfterRotation(t *testing.T) {
	m := newTestModel(t)
	oldSession := m.SessionID()
	m.submit("hi")

	// Rotate before the reply lands.
	m.rotateSession()
	if m.SessionID() == oldSession {
		t.Fatal("expected a new session ID")
	}
	if m.Transcript().Len() != 0 {
		t.Fatalf("expected cleared transcript, len = %d", m.Transcript().Len())
	}

	late := model.NewAgentTurn("stale reply", oldSession)
	m, _ = m.handleRelayReply(RelayReplyMsg{Turn: &late})

	if m.Transcript().Len() != 0 {
		t.Errorf("late reply was appended, len = %d", m.Transcript().Len())
	}
}

func TestTypingCeilingUnblocks(t *testing.T) {
	m := newTestModel(t)
	m.submit("hi")

	m, cmd := m.handleTypingCeiling(TypingCeilingMsg{Seq: m.ceilingSeq})
	if m.Sending() {
		t.Error("expected ceiling to unblock input")
	}
	if cmd == nil {
		t.Error("expected a toast command")
	}
}

func TestStaleCeilingIgnored(t *testing.T) {
	m := newTestModel(t)
	m.submit("first")

	staleSeq := m.ceilingSeq
	turn := model.NewAgentTurn("reply", m.SessionID())
	m, _ = m.handleRelayReply(RelayReplyMsg{Turn: &turn})
	m.submit("second")

	// The first send's timer fires after the second send started.
	m, _ = m.handleTypingCeiling(TypingCeilingMsg{Seq: staleSeq})
	if !m.Sending() {
		t.Error("stale ceiling unblocked a newer exchange")
	}
}

func TestUnknownCommandToast(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("/bogus")

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a toast command")
	}
	if m.Transcript().Len() != 0 {
		t.Error("command should not append a turn")
	}
}

func TestUploadResultSendsMarkdown(t *testing.T) {
	m := newTestModel(t)

	m, cmd := m.handleUploadResult(UploadResultMsg{
		Name: "chart.png",
		URL:  "https://cdn.example/chart.png",
	})
	if cmd == nil {
		t.Fatal("expected a send command")
	}
	if !m.Sending() {
		t.Error("expected sending state during the upload-triggered send")
	}

	last, ok := m.Transcript().LastTurn()
	if !ok {
		t.Fatal("expected a user turn for the embed")
	}
	if last.Content != "![chart.png](https://cdn.example/chart.png)" {
		t.Errorf("embed turn = %q", last.Content)
	}
	if last.Sender != model.SenderUser {
		t.Errorf("Sender = %q, want user", last.Sender)
	}
}

func TestUploadResultSendsWhileTypedMessagePending(t *testing.T) {
	m := newTestModel(t)
	m.submit("still waiting on this one")

	m, cmd := m.handleUploadResult(UploadResultMsg{
		Name: "photo.jpg",
		URL:  "https://cdn.example/photo.jpg",
	})
	if cmd == nil {
		t.Fatal("expected the embed to dispatch despite the pending send")
	}
	if m.Transcript().Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Transcript().Len())
	}
	last, _ := m.Transcript().LastTurn()
	if last.Content != "![photo.jpg](https://cdn.example/photo.jpg)" {
		t.Errorf("embed turn = %q", last.Content)
	}
}

func TestSubmitAfterCeilingSends(t *testing.T) {
	m := newTestModel(t)
	m.submit("first")

	m, _ = m.handleTypingCeiling(TypingCeilingMsg{Seq: m.ceilingSeq})
	if m.Sending() {
		t.Fatal("expected ceiling to unblock input")
	}

	cmd := m.submit("second")
	if cmd == nil {
		t.Fatal("expected the post-ceiling submit to dispatch")
	}
	if !m.Sending() {
		t.Error("expected sending state for the new exchange")
	}
	last, _ := m.Transcript().LastTurn()
	if last.Content != "second" {
		t.Errorf("last turn = %q, want %q", last.Content, "second")
	}
	if m.Transcript().Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Transcript().Len())
	}
}

func TestRelayFailureSurfacesOnlyAsErrorTurn(t *testing.T) {
	m := newTestModel(t)
	m.submit("hi")

	turn := model.NewAgentTurn(relay.ErrorTurnText, m.SessionID())
	m, cmd := m.handleRelayReply(RelayReplyMsg{Turn: &turn, Err: errors.New("dial tcp: connection refused")})

	if cmd != nil {
		t.Error("expected no toast alongside the error turn")
	}
	last, _ := m.Transcript().LastTurn()
	if last.Content != relay.ErrorTurnText {
		t.Errorf("last turn = %q", last.Content)
	}
	if m.Sending() {
		t.Error("expected input unblocked")
	}
}

func TestSeedIntentRotatesSession(t *testing.T) {
	m := newTestModel(t)
	oldSession := m.SessionID()

	cmd := m.SeedIntent(intent.NewTemplate("Product Launch"))
	if cmd == nil {
		t.Fatal("expected a command batch")
	}
	if m.SessionID() == oldSession {
		t.Error("expected a fresh session for intent consumption")
	}

	last, ok := m.Transcript().LastTurn()
	if !ok {
		t.Fatal("expected a seed turn")
	}
	if last.Content != "Make post using template: Product Launch" {
		t.Errorf("seed = %q", last.Content)
	}
	if last.SessionID != m.SessionID() {
		t.Errorf("seed turn session = %q, want %q", last.SessionID, m.SessionID())
	}
	if !m.Sending() {
		t.Error("expected sending state after seeding")
	}
}
