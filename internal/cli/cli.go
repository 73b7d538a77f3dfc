// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command parsing and dispatch for linkdeck.

package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the top-level CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdChat
	CmdArticles
	CmdBlogs
	CmdTemplates
	CmdQueue
	CmdApprove
	CmdDecline
	CmdSources
	CmdSession
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments shared by all commands.
type Args struct {
	// Global flags
	Quiet   bool
	JSON    bool
	Plain   bool
	Offline bool

	// Command-specific
	Subcommand string
	Search     string
	Limit      int

	// Raw args remaining after the command word
	Raw []string
}

const usageText = `linkdeck - LinkedIn content dashboard for the terminal

Linkdeck drives an automation agent that drafts LinkedIn posts from
curated articles, company blogs, and reusable templates, then queues
them for review.

Usage:
  linkdeck                    Start the TUI (default)
  linkdeck chat               Interactive chat REPL
  linkdeck articles           List reference articles
  linkdeck blogs              List company blogs
  linkdeck templates [NAME]   List templates, or show one
  linkdeck queue              Show the scheduled post queue
  linkdeck approve ID         Approve a queued post
  linkdeck decline ID         Decline a queued post
  linkdeck sources            List watched feeds
  linkdeck session [new]      Show or rotate the chat session
  linkdeck config [show|path] Configuration inspection
  linkdeck version            Show version information
  linkdeck help               Show this help

Flags:
  --search TERM    Filter articles/blogs by title or body
  --limit N        Limit list output (default 20)
  --offline        Serve lists from the local cache only
  --json           Machine-readable output
  -q, --quiet      Minimal output

Chat commands (inside the REPL):
  /new             Start a fresh session (clears agent memory)
  /session         Show the current session id
  /upload PATH     Upload an image and send it to the agent
  /help            Show REPL commands
  /quit            Exit (also: exit, quit, Ctrl+D)

Examples:
  linkdeck articles --search kubernetes
  linkdeck templates "Product Launch"
  linkdeck approve 42
  linkdeck chat
`

// Parse reads os.Args and returns the command plus parsed arguments.
func Parse() (Command, Args) {
	raw := os.Args[1:]
	args := Args{Limit: 20}

	if len(raw) == 0 {
		return CmdTUI, args
	}

	cmdWord := ""
	rest := raw
	if !strings.HasPrefix(raw[0], "-") {
		cmdWord = raw[0]
		rest = raw[1:]
	}

	parser := NewArgParser(rest)
	args.Quiet = parser.BoolFlag("quiet") || parser.BoolFlag("q")
	args.JSON = parser.BoolFlag("json")
	args.Plain = parser.BoolFlag("plain")
	args.Offline = parser.BoolFlag("offline")
	args.Search = parser.Flag("search")
	args.Limit = parser.FlagIntOrDefault("limit", 20)
	args.Subcommand = parser.Positional(0)
	args.Raw = rest

	switch strings.ToLower(cmdWord) {
	case "":
		// Flags only. --plain maps the default TUI to the REPL.
		if parser.BoolFlag("help") || parser.BoolFlag("h") {
			return CmdHelp, args
		}
		if parser.BoolFlag("version") || parser.BoolFlag("v") {
			return CmdVersion, args
		}
		if args.Plain {
			return CmdChat, args
		}
		return CmdTUI, args
	case "chat":
		return CmdChat, args
	case "articles", "a":
		return CmdArticles, args
	case "blogs", "b":
		return CmdBlogs, args
	case "templates", "t":
		return CmdTemplates, args
	case "queue", "posts":
		return CmdQueue, args
	case "approve":
		return CmdApprove, args
	case "decline":
		return CmdDecline, args
	case "sources":
		return CmdSources, args
	case "session", "sessions":
		return CmdSession, args
	case "config":
		return CmdConfig, args
	case "version":
		return CmdVersion, args
	case "help":
		return CmdHelp, args
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmdWord)
		return CmdHelp, args
	}
}

// HandleHelp prints usage information.
func HandleHelp() {
	fmt.Print(usageText)
}

// HandleVersion prints version information.
func HandleVersion(args Args) {
	if args.JSON {
		fmt.Printf(`{"version":%q,"commit":%q,"built":%q,"go":%q,"platform":"%s/%s"}`+"\n",
			Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return
	}
	fmt.Printf("linkdeck %s\n", Version)
	fmt.Printf("  commit:   %s\n", GitCommit)
	fmt.Printf("  built:    %s\n", BuildDate)
	fmt.Printf("  go:       %s\n", runtime.Version())
	fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
