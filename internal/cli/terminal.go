// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - TTY detection and plain-output rendering helpers.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY reports whether stdin is a terminal. Interactive prompts are
// only possible when it is.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY reports whether stdout is a terminal. Markdown and color
// output are disabled when stdout is piped.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

const (
	// DefaultTerminalWidth is the fallback when size detection fails.
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the narrowest wrap width used for rendering.
	MinTerminalWidth = 40
)

// TerminalWidth returns the current terminal width, clamped to a sane
// minimum, or DefaultTerminalWidth when detection fails.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// MARKDOWN OUTPUT
// =============================================================================

var markdownRenderer *glamour.TermRenderer

func init() {
	// Renderer creation can fail on exotic terminals. A nil renderer
	// falls back to raw text.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(TerminalWidth()),
	)
	if err == nil {
		markdownRenderer = renderer
	}
}

// RenderMarkdown renders markdown for terminal display. When stdout is
// not a TTY or the renderer is unavailable, the source is returned
// unchanged.
func RenderMarkdown(source string) string {
	if !IsStdoutTTY() || markdownRenderer == nil {
		return source
	}
	out, err := markdownRenderer.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimRight(out, "\n") + "\n"
}

// PrintMarkdown writes rendered markdown to stdout with a trailing
// newline.
func PrintMarkdown(source string) {
	fmt.Println(strings.TrimRight(RenderMarkdown(source), "\n"))
}
