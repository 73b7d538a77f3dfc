// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digitalbiz/linkdeck/internal/backend"
	"github.com/digitalbiz/linkdeck/internal/session"
	"github.com/digitalbiz/linkdeck/internal/ui/components"
	"github.com/digitalbiz/linkdeck/internal/ui/styles"
)

// homeView is the landing screen: session info and the watched feed list.
type homeView struct {
	sessions *session.Store
	sources  []backend.Source
	srcErr   error
	width    int
	height   int
}

func newHomeView(sessions *session.Store) homeView {
	return homeView{sessions: sessions}
}

func (h *homeView) setSize(width, height int) {
	h.width = width
	h.height = height
}

func (h *homeView) setSources(msg SourcesMsg) {
	h.sources = msg.Sources
	h.srcErr = msg.Err
}

func (h *homeView) update(tea.Msg) tea.Cmd {
	return nil
}

func (h *homeView) view() string {
	var b strings.Builder

	b.WriteString(styles.Header.Render("linkdeck"))
	b.WriteString("\n\n")
	b.WriteString("  Draft, review, and schedule LinkedIn posts with your automation agent.\n\n")

	if h.sessions != nil {
		b.WriteString(styles.Help.Render("  Chat session: " + h.sessions.GetOrCreate()))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.ListTitle.Render("Watched feeds"))
	b.WriteString("\n")
	switch {
	case h.srcErr != nil:
		b.WriteString("  " + styles.RenderWarning("feeds unavailable: "+h.srcErr.Error()) + "\n")
	case len(h.sources) == 0:
		b.WriteString(styles.Help.Render("  No feeds configured.") + "\n")
	default:
		for _, src := range h.sources {
			line := "  " + src.Name + "  " + styles.Help.Render(src.URL)
			b.WriteString(components.TruncateWidth(line, h.width-2) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("  tab switch view · q quit"))
	return b.String()
}
