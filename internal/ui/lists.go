// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digitalbiz/linkdeck/internal/backend"
	"github.com/digitalbiz/linkdeck/internal/intent"
	"github.com/digitalbiz/linkdeck/internal/ui/components"
	"github.com/digitalbiz/linkdeck/internal/ui/styles"
)

// =============================================================================
// ARTICLES
// =============================================================================

// articlesView lists curated articles; selecting one seeds a chat intent.
type articlesView struct {
	list      cursorList
	items     []backend.Article
	fromCache bool
	err       error
	width     int
	height    int
}

func (v *articlesView) setSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *articlesView) setData(msg ArticlesMsg) {
	v.items = msg.Articles
	v.fromCache = msg.FromCache
	v.err = msg.Err
	v.list.setLength(len(v.items))
}

func (v *articlesView) update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		v.list.up()
	case "down", "j":
		v.list.down()
	case "enter":
		if v.list.cursor < len(v.items) {
			a := v.items[v.list.cursor]
			in := intent.NewArticle(a.Title, a.Summary, a.URL)
			return func() tea.Msg { return openChatMsg{intent: in} }
		}
	}
	return nil
}

func (v *articlesView) view() string {
	var b strings.Builder
	title := "Articles"
	if v.fromCache {
		title += "  " + styles.StatusIndicators.Warning + " offline copy"
	}
	b.WriteString(styles.ListTitle.Render(title))
	b.WriteString("\n")

	switch {
	case v.err != nil:
		b.WriteString("  " + styles.RenderError(v.err.Error()) + "\n")
	case len(v.items) == 0:
		b.WriteString(styles.Help.Render("  Nothing here yet.") + "\n")
	default:
		start, end := v.list.window(v.height - 5)
		for i := start; i < end; i++ {
			a := v.items[i]
			line := a.Title + "  " + styles.Help.Render(a.Date.Format("2006-01-02"))
			line = components.TruncateWidth(line, v.width-4)
			if i == v.list.cursor {
				b.WriteString(styles.SelectedItem.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if v.list.cursor < len(v.items) {
			b.WriteString("\n")
			summary := components.TruncateWidth(v.items[v.list.cursor].Summary, (v.width-4)*2)
			b.WriteString(styles.Help.Render("  " + summary))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("  enter draft post from article · j/k move"))
	return b.String()
}

// =============================================================================
// BLOGS
// =============================================================================

// blogsView lists company blog posts.
type blogsView struct {
	list      cursorList
	items     []backend.Blog
	fromCache bool
	err       error
	width     int
	height    int
}

func (v *blogsView) setSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *blogsView) setData(msg BlogsMsg) {
	v.items = msg.Blogs
	v.fromCache = msg.FromCache
	v.err = msg.Err
	v.list.setLength(len(v.items))
}

func (v *blogsView) update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		v.list.up()
	case "down", "j":
		v.list.down()
	case "enter":
		if v.list.cursor < len(v.items) {
			blog := v.items[v.list.cursor]
			in := intent.NewBlog(blog.Title, blog.Content)
			return func() tea.Msg { return openChatMsg{intent: in} }
		}
	}
	return nil
}

func (v *blogsView) view() string {
	var b strings.Builder
	title := "Blogs"
	if v.fromCache {
		title += "  " + styles.StatusIndicators.Warning + " offline copy"
	}
	b.WriteString(styles.ListTitle.Render(title))
	b.WriteString("\n")

	switch {
	case v.err != nil:
		b.WriteString("  " + styles.RenderError(v.err.Error()) + "\n")
	case len(v.items) == 0:
		b.WriteString(styles.Help.Render("  Nothing here yet.") + "\n")
	default:
		start, end := v.list.window(v.height - 4)
		for i := start; i < end; i++ {
			blog := v.items[i]
			line := blog.Title + "  " + styles.Help.Render(blog.CreatedAt.Format("2006-01-02"))
			line = components.TruncateWidth(line, v.width-4)
			if i == v.list.cursor {
				b.WriteString(styles.SelectedItem.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("  enter draft post from blog · j/k move"))
	return b.String()
}

// =============================================================================
// TEMPLATES
// =============================================================================

// templatesView lists post templates with a highlighted preview pane.
type templatesView struct {
	list   cursorList
	items  []backend.Template
	err    error
	width  int
	height int
}

func (v *templatesView) setSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *templatesView) setData(msg TemplatesMsg) {
	v.items = msg.Templates
	v.err = msg.Err
	v.list.setLength(len(v.items))
}

func (v *templatesView) update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		v.list.up()
	case "down", "j":
		v.list.down()
	case "enter":
		if v.list.cursor < len(v.items) {
			in := intent.NewTemplate(v.items[v.list.cursor].Name)
			return func() tea.Msg { return openChatMsg{intent: in} }
		}
	}
	return nil
}

func (v *templatesView) view() string {
	var b strings.Builder
	b.WriteString(styles.ListTitle.Render("Templates"))
	b.WriteString("\n")

	switch {
	case v.err != nil:
		b.WriteString("  " + styles.RenderError(v.err.Error()) + "\n")
	case len(v.items) == 0:
		b.WriteString(styles.Help.Render("  Nothing here yet.") + "\n")
	default:
		for i, tmpl := range v.items {
			line := components.TruncateWidth(tmpl.Name, v.width-4)
			if i == v.list.cursor {
				b.WriteString(styles.SelectedItem.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if v.list.cursor < len(v.items) {
			b.WriteString("\n")
			preview := v.items[v.list.cursor].Content
			if len(preview) > 600 {
				preview = preview[:600]
			}
			b.WriteString(components.Highlight(preview, "markdown", styles.HasDarkBackground()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("  enter draft post from template · j/k move"))
	return b.String()
}
