// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/digitalbiz/linkdeck/internal/backend"
	"github.com/digitalbiz/linkdeck/internal/cache"
	"github.com/digitalbiz/linkdeck/internal/config"
	"github.com/digitalbiz/linkdeck/internal/intent"
	"github.com/digitalbiz/linkdeck/internal/relay"
	"github.com/digitalbiz/linkdeck/internal/session"
	"github.com/digitalbiz/linkdeck/internal/storage"
	"github.com/digitalbiz/linkdeck/internal/ui/chat"
)

// =============================================================================
// VIEWS
// =============================================================================

// View identifies the active screen.
type View int

const (
	ViewHome View = iota
	ViewChat
	ViewArticles
	ViewBlogs
	ViewTemplates
	ViewQueue
	ViewSettings
)

// Title returns the tab label for a view.
func (v View) Title() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewChat:
		return "Chat"
	case ViewArticles:
		return "Articles"
	case ViewBlogs:
		return "Blogs"
	case ViewTemplates:
		return "Templates"
	case ViewQueue:
		return "Queue"
	case ViewSettings:
		return "Settings"
	default:
		return "?"
	}
}

var viewOrder = []View{
	ViewHome, ViewChat, ViewArticles, ViewBlogs, ViewTemplates, ViewQueue, ViewSettings,
}

// =============================================================================
// APP MODEL
// =============================================================================

// Deps bundles everything the app needs to run.
type Deps struct {
	Config   *config.Config
	Backend  *backend.Client
	Cache    *cache.Cache
	Relay    *relay.Client
	Uploader *storage.Uploader
	Sessions *session.Store
	Slot     *intent.Slot
}

// App is the root Bubble Tea model.
type App struct {
	deps Deps
	view View

	chat      chat.Model
	home      homeView
	articles  articlesView
	blogs     blogsView
	templates templatesView
	queue     queueView
	settings  settingsView

	width  int
	height int
}

// NewApp assembles the dashboard.
func NewApp(deps Deps) App {
	chatModel := chat.New(deps.Relay, deps.Uploader, deps.Sessions)
	if deps.Config != nil {
		chatModel = chatModel.
			WithTypingCeiling(secsToDuration(deps.Config.Agent.TypingCeilingSecs)).
			WithTimestamps(deps.Config.UI.ShowTimestamps)
	}

	return App{
		deps:     deps,
		view:     ViewHome,
		chat:     chatModel,
		home:     newHomeView(deps.Sessions),
		settings: newSettingsView(deps.Config),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		a.chat.Init(),
		loadArticles(a.deps.Backend, a.deps.Cache),
		loadBlogs(a.deps.Backend, a.deps.Cache),
		loadTemplates(a.deps.Backend),
		loadQueue(a.deps.Backend),
		loadSources(a.deps.Backend),
	}

	// An intent published before launch opens straight into the chat.
	if a.deps.Slot != nil {
		if pending, ok := a.deps.Slot.ConsumeOnce(); ok {
			cmds = append(cmds, func() tea.Msg {
				return openChatMsg{intent: pending}
			})
		}
	}
	return tea.Batch(cmds...)
}

// openChatMsg switches to the chat view and seeds it with an intent.
type openChatMsg struct {
	intent intent.Intent
}

// ConfigReloadedMsg carries a hot-reloaded configuration into the app. The
// config watcher sends it through Program.Send.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.chat.SetSize(msg.Width, msg.Height-1)
		a.home.setSize(msg.Width, msg.Height-1)
		a.articles.setSize(msg.Width, msg.Height-1)
		a.blogs.setSize(msg.Width, msg.Height-1)
		a.templates.setSize(msg.Width, msg.Height-1)
		a.queue.setSize(msg.Width, msg.Height-1)
		a.settings.setSize(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab":
			a.view = nextView(a.view)
			return a, nil
		case "shift+tab":
			a.view = prevView(a.view)
			return a, nil
		}
		// "q" quits everywhere except the chat input.
		if msg.String() == "q" && a.view != ViewChat {
			return a, tea.Quit
		}

	case openChatMsg:
		a.view = ViewChat
		return a, a.chat.SeedIntent(msg.intent)

	case ConfigReloadedMsg:
		a.deps.Config = msg.Config
		a.settings.setConfig(msg.Config)
		a.chat = a.chat.
			WithTypingCeiling(secsToDuration(msg.Config.Agent.TypingCeilingSecs)).
			WithTimestamps(msg.Config.UI.ShowTimestamps)
		return a, nil

	case ArticlesMsg:
		a.articles.setData(msg)
		return a, nil
	case BlogsMsg:
		a.blogs.setData(msg)
		return a, nil
	case TemplatesMsg:
		a.templates.setData(msg)
		return a, nil
	case QueueMsg:
		a.queue.setData(msg)
		return a, nil
	case SourcesMsg:
		a.home.setSources(msg)
		return a, nil
	case PostUpdatedMsg:
		a.queue.applyUpdate(msg)
		return a, nil
	}

	return a.updateActiveView(msg)
}

// updateActiveView routes remaining messages to the focused view.
func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.view {
	case ViewChat:
		a.chat, cmd = a.chat.Update(msg)
	case ViewArticles:
		cmd = a.articles.update(msg)
	case ViewBlogs:
		cmd = a.blogs.update(msg)
	case ViewTemplates:
		cmd = a.templates.update(msg)
	case ViewQueue:
		cmd = a.queue.update(msg, a.deps.Backend)
	case ViewSettings:
		cmd = a.settings.update(msg)
	default:
		cmd = a.home.update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	var body string
	switch a.view {
	case ViewChat:
		body = a.chat.View()
	case ViewArticles:
		body = a.articles.view()
	case ViewBlogs:
		body = a.blogs.view()
	case ViewTemplates:
		body = a.templates.view()
	case ViewQueue:
		body = a.queue.view()
	case ViewSettings:
		body = a.settings.view()
	default:
		body = a.home.view()
	}
	return renderTabs(a.view, a.width) + "\n" + body
}

func nextView(v View) View {
	for i, candidate := range viewOrder {
		if candidate == v {
			return viewOrder[(i+1)%len(viewOrder)]
		}
	}
	return ViewHome
}

func prevView(v View) View {
	for i, candidate := range viewOrder {
		if candidate == v {
			return viewOrder[(i-1+len(viewOrder))%len(viewOrder)]
		}
	}
	return ViewHome
}
