// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package intent

import (
	"errors"
	"fmt"

	"github.com/digitalbiz/linkdeck/internal/util"
)

// =============================================================================
// INTENT KINDS
// =============================================================================

// Kind identifies what a pending intent asks the agent to do.
type Kind string

const (
	KindArticle  Kind = "article"
	KindBlog     Kind = "blog"
	KindTemplate Kind = "template"
	KindGeneric  Kind = "generic"
)

// blogExcerptRunes caps how much blog body is quoted in the seed prompt.
const blogExcerptRunes = 200

var (
	ErrUnknownKind = errors.New("intent: unknown kind")
	ErrIncomplete  = errors.New("intent: missing required fields")
)

// =============================================================================
// INTENT
// =============================================================================

// Intent is a pending request handed from a content view to the chat view.
// Only the fields relevant to its Kind are populated.
type Intent struct {
	Kind    Kind   `json:"type"`
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
	URL     string `json:"url,omitempty"`
	Content string `json:"content,omitempty"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewArticle builds an article intent. URL may be empty.
func NewArticle(title, summary, url string) Intent {
	return Intent{Kind: KindArticle, Title: title, Summary: summary, URL: url}
}

// NewBlog builds a blog intent from a post title and its full body.
func NewBlog(title, content string) Intent {
	return Intent{Kind: KindBlog, Title: title, Content: content}
}

// NewTemplate builds a template intent by template name.
func NewTemplate(name string) Intent {
	return Intent{Kind: KindTemplate, Name: name}
}

// NewGeneric builds a free-form intent carrying a prepared message.
func NewGeneric(message string) Intent {
	return Intent{Kind: KindGeneric, Message: message}
}

// Validate checks that the fields required by the intent's kind are present.
func (in Intent) Validate() error {
	switch in.Kind {
	case KindArticle:
		if in.Title == "" || in.Summary == "" {
			return ErrIncomplete
		}
	case KindBlog:
		if in.Title == "" || in.Content == "" {
			return ErrIncomplete
		}
	case KindTemplate:
		if in.Name == "" {
			return ErrIncomplete
		}
	case KindGeneric:
		if in.Message == "" {
			return ErrIncomplete
		}
	default:
		return ErrUnknownKind
	}
	return nil
}

// Seed renders the first user turn for this intent.
func (in Intent) Seed() string {
	switch in.Kind {
	case KindArticle:
		seed := fmt.Sprintf(
			"Create a post about the following article\n\n**Title:** %s\n**Summary:** %s",
			in.Title, in.Summary)
		if in.URL != "" {
			seed += fmt.Sprintf("\n**URL:** %s", in.URL)
		}
		return seed
	case KindBlog:
		return fmt.Sprintf(
			"Create a social media post about the following blog:\n\n**Title:** %s\n**Summary:** %s",
			in.Title, util.TruncateRunesNoEllipsis(in.Content, blogExcerptRunes))
	case KindTemplate:
		return "Make post using template: " + in.Name
	case KindGeneric:
		return in.Message
	default:
		return ""
	}
}
