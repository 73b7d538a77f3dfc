// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/digitalbiz/linkdeck/internal/config"
)

const version = "1.0.0"

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--text", "-t":
			if err := runTextSetup(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "--help", "-h":
			printHelp()
			return
		case "--version", "-v":
			fmt.Printf("linkdeck-setup v%s\n", version)
			return
		}
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("The setup wizard requires an interactive terminal.")
		fmt.Println("Run with --text for simple prompts.")
		os.Exit(1)
	}

	p := tea.NewProgram(newWizard(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running setup: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`linkdeck-setup v` + version + `

Guided configuration for linkdeck. Writes ~/.linkdeck/config.toml.

Usage:
  linkdeck-setup           Interactive wizard
  linkdeck-setup --text    Plain text prompts
  linkdeck-setup --help    Show this help`)
}

// =============================================================================
// TEXT MODE
// =============================================================================

// runTextSetup is the fallback for terminals where the TUI cannot run.
func runTextSetup() error {
	cfg := loadOrDefault()
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("linkdeck setup")
	fmt.Println()

	cfg.Agent.WebhookURL = promptLine(reader, "Agent webhook URL", cfg.Agent.WebhookURL)
	cfg.Backend.URL = promptLine(reader, "Backend (Supabase) URL", cfg.Backend.URL)
	cfg.Backend.APIKey = promptLine(reader, "Backend API key", cfg.Backend.APIKey)
	theme := promptLine(reader, "Theme (dark/light)", cfg.UI.Theme)
	if theme == "dark" || theme == "light" {
		cfg.UI.Theme = theme
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	path, _ := config.ConfigPath()
	fmt.Printf("\nSaved %s\n", path)
	fmt.Println("Run 'linkdeck' to start the dashboard.")
	return nil
}

func promptLine(reader *bufio.Reader, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return current
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}

// loadOrDefault starts from the existing config when one exists, so
// re-running setup edits instead of resetting.
func loadOrDefault() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.Default()
	}
	return cfg
}
