// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/digitalbiz/linkdeck/internal/ui/styles"
)

// =============================================================================
// SHARED VIEW HELPERS
// =============================================================================

func secsToDuration(secs int) time.Duration {
	if secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// renderTabs draws the view switcher across the top of the screen.
func renderTabs(active View, width int) string {
	var tabs []string
	for _, v := range viewOrder {
		label := " " + v.Title() + " "
		if v == active {
			tabs = append(tabs, styles.SelectedItem.Render(label))
		} else {
			tabs = append(tabs, styles.Help.Render(label))
		}
	}
	line := strings.Join(tabs, "")
	return lipgloss.NewStyle().
		Width(width).
		Background(styles.SurfaceDim).
		Render(line)
}

// cursorList tracks the selected row of a scrolling list.
type cursorList struct {
	cursor int
	length int
}

func (c *cursorList) setLength(n int) {
	c.length = n
	if c.cursor >= n {
		c.cursor = n - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

func (c *cursorList) up() {
	if c.cursor > 0 {
		c.cursor--
	}
}

func (c *cursorList) down() {
	if c.cursor < c.length-1 {
		c.cursor++
	}
}

// window returns the slice bounds that keep the cursor visible in a list of
// the given height.
func (c *cursorList) window(height int) (int, int) {
	if height <= 0 || c.length <= height {
		return 0, c.length
	}
	start := c.cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > c.length {
		start = c.length - height
	}
	return start, start + height
}
