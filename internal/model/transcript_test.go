// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "testing"

func TestNewTurnFields(t *testing.T) {
	turn := NewUserTurn("hello", "sess-1")

	if turn.ID == "" {
		t.Error("expected non-empty ID")
	}
	if turn.Sender != SenderUser {
		t.Errorf("Sender = %q, want %q", turn.Sender, SenderUser)
	}
	if turn.Content != "hello" {
		t.Errorf("Content = %q, want %q", turn.Content, "hello")
	}
	if turn.SessionID != "sess-1" {
		t.Errorf("SessionID = %q, want %q", turn.SessionID, "sess-1")
	}
	if turn.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	agent := NewAgentTurn("reply", "sess-1")
	if agent.Sender != SenderAgent {
		t.Errorf("Sender = %q, want %q", agent.Sender, SenderAgent)
	}
	if agent.ID == turn.ID {
		t.Error("expected unique turn IDs")
	}
}

func TestSenderDisplayName(t *testing.T) {
	tests := []struct {
		sender Sender
		want   string
	}{
		{SenderUser, "You"},
		{SenderAgent, "Agent"},
		{Sender("other"), "other"},
	}

	for _, tt := range tests {
		if got := tt.sender.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.sender, got, tt.want)
		}
	}
}

func TestTranscriptAppendOrder(t *testing.T) {
	tr := NewTranscript()

	tr.Append(NewUserTurn("one", "s1"), "s1")
	tr.Append(NewAgentTurn("two", "s1"), "s1")
	tr.Append(NewUserTurn("three", "s1"), "s1")

	turns := tr.Turns()
	if len(turns) != 3 {
		t.Fatalf("Len = %d, want 3", len(turns))
	}
	want := []string{"one", "two", "three"}
	for i, w := range want {
		if turns[i].Content != w {
			t.Errorf("turns[%d].Content = %q, want %q", i, turns[i].Content, w)
		}
	}

	last, ok := tr.LastTurn()
	if !ok || last.Content != "three" {
		t.Errorf("LastTurn = %q, %v, want %q, true", last.Content, ok, "three")
	}
}

func TestTranscriptDropsStaleSession(t *testing.T) {
	tr := NewTranscript()

	if !tr.Append(NewUserTurn("hi", "s1"), "s1") {
		t.Fatal("expected append under matching session to succeed")
	}
	if tr.Append(NewAgentTurn("late reply", "s1"), "s2") {
		t.Error("expected append under rotated session to be dropped")
	}
	if tr.Len() != 1 {
		t.Errorf("Len = %d, want 1", tr.Len())
	}
}

func TestTranscriptClear(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserTurn("hi", "s1"), "s1")
	tr.Clear()

	if tr.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", tr.Len())
	}
	if _, ok := tr.LastTurn(); ok {
		t.Error("expected no last turn after Clear")
	}
}

func TestTranscriptTurnsIsCopy(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserTurn("hi", "s1"), "s1")

	turns := tr.Turns()
	turns[0].Content = "mutated"

	got, _ := tr.LastTurn()
	if got.Content != "hi" {
		t.Errorf("Content = %q, internal state mutated through snapshot", got.Content)
	}
}
