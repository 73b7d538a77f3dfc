// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat REPL for linkdeck.
//
// Handles the "linkdeck chat" command: a readline-style loop that
// relays messages to the automation agent and prints its replies.
//
// Interactive commands (during chat):
//   /new             Start a fresh session (clears agent memory)
//   /session         Show the current session id
//   /upload PATH     Upload an image and send it to the agent
//   /help, /h        Show available commands
//   /quit, /q        Exit chat
//   Ctrl+C           Cancel the in-flight request
//   Ctrl+D           Exit chat

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/digitalbiz/linkdeck/internal/config"
	"github.com/digitalbiz/linkdeck/internal/storage"
	"github.com/digitalbiz/linkdeck/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// historyFileName lives next to the session file in the state directory.
const historyFileName = "chat_history"

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI with persistent input history.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	stateDir, err := config.StateDir()
	if err != nil {
		stateDir = os.TempDir()
	}

	cli := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(stateDir, historyFileName),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt. Non-empty
// lines are added to the history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureStateDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// replSession holds the state for one interactive chat run.
type replSession struct {
	deps      *Deps
	sessionID string
	quiet     bool

	// Cancels the in-flight relay request on Ctrl+C.
	cancelFunc context.CancelFunc

	input *ChatCLI
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChat runs the interactive chat REPL.
func HandleChat(deps *Deps, args Args) error {
	if !deps.Relay.IsConfigured() {
		return fmt.Errorf("no webhook configured. Set agent.webhook_url in the config file or LINKDECK_WEBHOOK_URL")
	}

	repl := &replSession{
		deps:      deps,
		sessionID: deps.Sessions.GetOrCreate(),
		quiet:     args.Quiet,
		input:     NewChatCLI(),
	}
	defer repl.input.Close()

	if !repl.quiet {
		printWelcome(repl)
	}

	// A listing view may have parked an intent before launching chat.
	// Consuming it always starts a fresh session.
	if in, ok := deps.Slot.ConsumeOnce(); ok {
		repl.sessionID = deps.Sessions.Rotate()
		fmt.Println(infoStyle.Render("Continuing from a selected item..."))
		repl.send(in.Seed())
	}

	// First Ctrl+C cancels the in-flight request instead of exiting.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		for range sigChan {
			if repl.cancelFunc != nil {
				repl.cancelFunc()
				repl.cancelFunc = nil
				fmt.Fprintln(os.Stderr, "\n"+errorStyle.Render("[Cancelled]"))
			}
		}
	}()

	for {
		input, err := repl.input.ReadInput(promptStyle.Render("linkdeck> "))
		if err != nil {
			// liner.ErrPromptAborted is Ctrl+C, anything else is EOF.
			fmt.Println()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			keepGoing, err := repl.handleSlashCommand(input)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
			}
			if !keepGoing {
				return nil
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			return nil
		}

		repl.send(input)
	}
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand executes a /command. The bool result is false when
// the REPL should exit.
func (r *replSession) handleSlashCommand(input string) (bool, error) {
	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "/quit", "/q", "/exit":
		return false, nil

	case "/help", "/h":
		printReplHelp()
		return true, nil

	case "/session", "/s":
		fmt.Println(infoStyle.Render("Session: " + r.sessionID))
		return true, nil

	case "/new", "/n":
		r.sessionID = r.deps.Sessions.Rotate()
		fmt.Println(commandStyle.Render("Started a new session: " + r.sessionID))
		return true, nil

	case "/upload", "/u":
		if len(fields) < 2 {
			return true, fmt.Errorf("usage: /upload PATH")
		}
		return true, r.upload(strings.Join(fields[1:], " "))

	default:
		return true, fmt.Errorf("unknown command: %s (try /help)", cmd)
	}
}

// upload pushes an image to storage and relays its markdown embed as if
// the user had typed it.
func (r *replSession) upload(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), storage.DefaultTimeout)
	defer cancel()

	url, err := r.deps.Uploader.UploadFile(ctx, path)
	if err != nil {
		return err
	}
	fmt.Println(commandStyle.Render("Uploaded " + filepath.Base(path) + "."))
	r.send(storage.Markdown(filepath.Base(path), url))
	return nil
}

// =============================================================================
// MESSAGE PROCESSING
// =============================================================================

// send relays one message and prints the agent's reply. Errors surface
// as a transcript-style error line, matching the TUI behavior.
func (r *replSession) send(content string) {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancelFunc = cancel
	defer func() {
		r.cancelFunc = nil
		cancel()
	}()

	if !r.quiet {
		fmt.Println(infoStyle.Render("Agent is typing..."))
	}

	turn, err := r.deps.Relay.Send(ctx, content, r.sessionID)
	if turn == nil {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
		}
		return
	}

	// An error turn carries the fallback text, print it like any reply.
	fmt.Println()
	PrintMarkdown(turn.Content)
}

// =============================================================================
// DISPLAY
// =============================================================================

func printWelcome(r *replSession) {
	fmt.Println(welcomeStyle.Render("linkdeck chat"))
	fmt.Println(infoStyle.Render("Session " + shortID(r.sessionID) + ". Type /help for commands, /quit to exit."))
	fmt.Println()
}

func printReplHelp() {
	help := `Commands:
  /new             Start a fresh session (clears agent memory)
  /session         Show the current session id
  /upload PATH     Upload an image and send it to the agent
  /help            Show this help
  /quit            Exit chat (also: exit, quit, Ctrl+D)`
	fmt.Println(commandStyle.Render(help))
}

// shortID truncates a session id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
