package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Dan9191/finplan-service/internal/education"
	"github.com/google/subcommands"
)

type learnCmd struct {
	*app
	simple bool
}

func (*learnCmd) Name() string     { return "learn" }
func (*learnCmd) Synopsis() string { return "read the banking topics" }
func (*learnCmd) Usage() string {
	return `learn [-simple] [topic|category]

Without arguments, list the topics by category. With a topic id, show the
topic; -simple explains it like you're 18. With a category, list its topics.
`
}

func (c *learnCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.simple, "simple", false, "explain like I'm 18")
}

func (c *learnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		c.printMarkdown(tabsMarkdown(c.library.Tabs()))
		return subcommands.ExitSuccess
	}

	arg := strings.Join(f.Args(), " ")
	t, err := c.library.Topic(arg)
	if err == nil {
		c.printMarkdown(c.library.Markdown(t, c.simple))
		return subcommands.ExitSuccess
	}
	if !errors.Is(err, education.ErrTopicNotFound) {
		fmt.Fprintf(os.Stderr, "Error reading topic: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, tab := range c.library.Tabs() {
		if strings.EqualFold(tab.Category, arg) {
			c.printMarkdown(tabsMarkdown([]education.Tab{tab}))
			return subcommands.ExitSuccess
		}
	}
	fmt.Fprintf(os.Stderr, "No topic or category named %q\n", arg)
	return subcommands.ExitFailure
}

func tabsMarkdown(tabs []education.Tab) string {
	var b strings.Builder
	for _, tab := range tabs {
		fmt.Fprintf(&b, "## %s\n\n", tab.Category)
		for _, t := range tab.Topics {
			fmt.Fprintf(&b, "- `%s` **%s** %s\n", t.ID, t.Title, t.Tag)
		}
		b.WriteString("\n")
	}
	return b.String()
}
