// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// linkdeck - A terminal dashboard for LinkedIn content automation.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digitalbiz/linkdeck/internal/backend"
	"github.com/digitalbiz/linkdeck/internal/cache"
	"github.com/digitalbiz/linkdeck/internal/cli"
	"github.com/digitalbiz/linkdeck/internal/config"
	"github.com/digitalbiz/linkdeck/internal/intent"
	"github.com/digitalbiz/linkdeck/internal/relay"
	"github.com/digitalbiz/linkdeck/internal/session"
	"github.com/digitalbiz/linkdeck/internal/storage"
	"github.com/digitalbiz/linkdeck/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	// Help and version need no wiring.
	switch cmd {
	case cli.CmdHelp:
		cli.HandleHelp()
		return
	case cli.CmdVersion:
		cli.HandleVersion(args)
		return
	}

	deps, err := wire()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if deps.Cache != nil {
			deps.Cache.Close()
		}
	}()

	switch cmd {
	case cli.CmdChat:
		err = cli.HandleChat(deps, args)
	case cli.CmdArticles:
		err = cli.HandleArticles(deps, args)
	case cli.CmdBlogs:
		err = cli.HandleBlogs(deps, args)
	case cli.CmdTemplates:
		err = cli.HandleTemplates(deps, args)
	case cli.CmdQueue:
		err = cli.HandleQueue(deps, args)
	case cli.CmdApprove:
		err = cli.HandleReview(deps, args, backend.StatusApproved)
	case cli.CmdDecline:
		err = cli.HandleReview(deps, args, backend.StatusDeclined)
	case cli.CmdSources:
		err = cli.HandleSources(deps, args)
	case cli.CmdSession:
		err = cli.HandleSession(deps, args)
	case cli.CmdConfig:
		err = cli.HandleConfig(deps, args)
	default:
		err = runTUI(deps)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// wire loads configuration and constructs every service the commands
// share. Missing backend or webhook settings are not fatal here, the
// individual handlers report them when actually needed.
func wire() (*cli.Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	config.SetGlobal(cfg)

	if err := config.EnsureStateDir(); err != nil {
		return nil, fmt.Errorf("preparing state dir: %w", err)
	}
	setupLogging()

	sessionPath, err := config.StatePath(session.FileName)
	if err != nil {
		return nil, err
	}
	slotPath, err := config.StatePath(intent.FileName)
	if err != nil {
		return nil, err
	}

	deps := &cli.Deps{
		Config:   cfg,
		Sessions: session.NewStore(sessionPath),
		Slot:     intent.NewSlot(slotPath),
		Relay: relay.NewClient(cfg.Agent.WebhookURL).
			WithTimeout(secsToDuration(cfg.Agent.TimeoutSecs)),
		Backend: backend.NewClient(cfg.Backend.URL, cfg.Backend.APIKey).
			WithRateLimit(cfg.Backend.RequestsPerSecond),
		Uploader: storage.NewUploader(cfg.Backend.URL, cfg.Backend.APIKey).
			WithBucket(cfg.Storage.Bucket).
			WithPrefix(cfg.Storage.UploadPrefix),
	}

	// The offline cache is best effort. A broken cache file should not
	// keep the dashboard from starting.
	if cachePath, err := config.StatePath(cache.FileName); err == nil {
		if db, err := cache.Open(cachePath); err == nil {
			deps.Cache = db
		} else {
			log.Printf("cache unavailable: %v", err)
		}
	}

	return deps, nil
}

// setupLogging sends the standard logger to a file in the state dir so
// diagnostics never corrupt the TUI.
func setupLogging() {
	dir, err := config.StateDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "linkdeck.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
}

// runTUI starts the dashboard interface.
func runTUI(deps *cli.Deps) error {
	app := ui.NewApp(ui.Deps{
		Config:   deps.Config,
		Backend:  deps.Backend,
		Cache:    deps.Cache,
		Relay:    deps.Relay,
		Uploader: deps.Uploader,
		Sessions: deps.Sessions,
		Slot:     deps.Slot,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Hot-reload config edits while the dashboard is running.
	if path, err := config.ConfigPath(); err == nil {
		watcher, werr := config.NewWatcher(path, func(cfg *config.Config) {
			p.Send(ui.ConfigReloadedMsg{Config: cfg})
		})
		if werr == nil {
			if werr = watcher.Watch(); werr == nil {
				defer watcher.Close()
			}
		}
		if werr != nil {
			log.Printf("config watcher disabled: %v", werr)
		}
	}

	_, err := p.Run()
	return err
}

func secsToDuration(secs int) time.Duration {
	if secs <= 0 {
		return relay.DefaultTimeout
	}
	return time.Duration(secs) * time.Second
}
