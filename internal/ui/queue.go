// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digitalbiz/linkdeck/internal/backend"
	"github.com/digitalbiz/linkdeck/internal/ui/components"
	"github.com/digitalbiz/linkdeck/internal/ui/styles"
)

// queueView is the review queue for drafted posts.
type queueView struct {
	list   cursorList
	items  []backend.ScheduledPost
	err    error
	notice string
	width  int
	height int
}

func (v *queueView) setSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *queueView) setData(msg QueueMsg) {
	v.items = msg.Posts
	v.err = msg.Err
	v.list.setLength(len(v.items))
}

// applyUpdate patches the row in place after an approve/decline round trip.
func (v *queueView) applyUpdate(msg PostUpdatedMsg) {
	if msg.Err != nil {
		v.notice = styles.RenderError(msg.Err.Error())
		return
	}
	for i := range v.items {
		if v.items[i].ID == msg.Post.ID {
			v.items[i] = *msg.Post
			break
		}
	}
	v.notice = styles.RenderSuccess("Post " + string(msg.Post.Status))
}

func (v *queueView) update(msg tea.Msg, client *backend.Client) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		v.list.up()
	case "down", "j":
		v.list.down()
	case "a":
		if v.list.cursor < len(v.items) {
			return updatePostStatus(client, v.items[v.list.cursor].ID, backend.StatusApproved)
		}
	case "d":
		if v.list.cursor < len(v.items) {
			return updatePostStatus(client, v.items[v.list.cursor].ID, backend.StatusDeclined)
		}
	}
	return nil
}

func statusBadge(status backend.PostStatus) string {
	switch status {
	case backend.StatusApproved:
		return styles.StatusApproved.Render("approved")
	case backend.StatusDeclined:
		return styles.StatusDeclined.Render("declined")
	default:
		return styles.StatusPending.Render("pending")
	}
}

func (v *queueView) view() string {
	var b strings.Builder
	b.WriteString(styles.ListTitle.Render("Review queue"))
	b.WriteString("\n")

	switch {
	case v.err != nil:
		b.WriteString("  " + styles.RenderError(v.err.Error()) + "\n")
	case len(v.items) == 0:
		b.WriteString(styles.Help.Render("  No drafts waiting for review.") + "\n")
	default:
		start, end := v.list.window(v.height - 8)
		for i := start; i < end; i++ {
			post := v.items[i]
			line := statusBadge(post.Status) + "  " +
				components.TruncateWidth(components.FirstLine(post.Post), v.width-18)
			if i == v.list.cursor {
				b.WriteString(styles.SelectedItem.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if v.list.cursor < len(v.items) {
			b.WriteString("\n")
			body := components.TruncateWidth(v.items[v.list.cursor].Post, (v.width-4)*3)
			b.WriteString(styles.Help.Render("  " + body))
			b.WriteString("\n")
		}
	}

	if v.notice != "" {
		b.WriteString("\n  " + v.notice + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("  a approve · d decline · j/k move"))
	return b.String()
}
