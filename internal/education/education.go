// Package education serves the static banking topics: tabs by category,
// topic lookup and rendering with an "explain like I'm 18" switch.
package education

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/yuin/goldmark"
)

// ErrTopicNotFound is returned for ids missing from the library
var ErrTopicNotFound = errors.New("topic not found")

// Source provides the topic content
type Source interface {
	Topic(id string) (models.Topic, bool)
	Topics() []models.Topic
	Categories() []string
}

// Summary is a topic card on a tab
type Summary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tag   string `json:"tag"`
}

// Tab groups the topics of one category
type Tab struct {
	Category string    `json:"category"`
	Topics   []Summary `json:"topics"`
}

// Library renders topics from a source
type Library struct {
	src Source
	md  goldmark.Markdown
}

// NewLibrary initializes a library over src
func NewLibrary(src Source) *Library {
	return &Library{src: src, md: goldmark.New()}
}

// Tabs returns one tab per category in display order
func (l *Library) Tabs() []Tab {
	tabs := make([]Tab, 0, len(l.src.Categories()))
	for _, cat := range l.src.Categories() {
		tab := Tab{Category: cat, Topics: []Summary{}}
		for _, t := range l.ByCategory(cat) {
			tab.Topics = append(tab.Topics, Summary{ID: t.ID, Title: t.Title, Tag: t.Tag})
		}
		tabs = append(tabs, tab)
	}
	return tabs
}

// ByCategory returns the topics in category, or all topics when it is empty
func (l *Library) ByCategory(category string) []models.Topic {
	all := l.src.Topics()
	if category == "" {
		return all
	}
	out := make([]models.Topic, 0, len(all))
	for _, t := range all {
		if strings.EqualFold(t.Category, category) || strings.EqualFold(slug(t.Category), category) {
			out = append(out, t)
		}
	}
	return out
}

// Topic looks up a topic by id
func (l *Library) Topic(id string) (models.Topic, error) {
	t, ok := l.src.Topic(id)
	if !ok {
		return models.Topic{}, fmt.Errorf("%q: %w", id, ErrTopicNotFound)
	}
	return t, nil
}

// Markdown renders a topic. simple selects the beginner explanation.
func (l *Library) Markdown(t models.Topic, simple bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "*%s* · `%s`\n\n", t.Category, t.Tag)

	b.WriteString("## 📖 What is it?\n\n")
	if simple {
		b.WriteString(t.BeginnerExplanation)
	} else {
		b.WriteString(t.ExpertExplanation)
	}
	b.WriteString("\n\n## 💡 Real-World Example\n\n")
	b.WriteString(t.RealExample)
	b.WriteString("\n\n## 🛡️ Fraud Protection Tips\n\n")
	b.WriteString(t.FraudTips)
	b.WriteString("\n\n## ❓ Frequently Asked Questions\n")
	for _, f := range t.FAQs {
		fmt.Fprintf(&b, "\n**%s**\n\n%s\n", f.Question, f.Answer)
	}
	return b.String()
}

// HTML renders a topic to an HTML fragment
func (l *Library) HTML(t models.Topic, simple bool) (string, error) {
	var buf bytes.Buffer
	if err := l.md.Convert([]byte(l.Markdown(t, simple)), &buf); err != nil {
		return "", fmt.Errorf("failed to render topic %q: %w", t.ID, err)
	}
	return buf.String(), nil
}

// slug turns "Online Banking" into "online-banking"
func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
