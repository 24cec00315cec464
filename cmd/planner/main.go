package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/Dan9191/finplan-service/internal/calculator"
	"github.com/Dan9191/finplan-service/internal/catalog"
	"github.com/Dan9191/finplan-service/internal/education"
	"github.com/Dan9191/finplan-service/internal/policy"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var rawOutput = flag.Bool("raw", false, "print markdown without terminal styling")

// app holds what every command needs
type app struct {
	catalog *catalog.Catalog
	calc    *calculator.Calculator
	library *education.Library
	log     *logrus.Logger
	out     io.Writer
}

func newApp(out io.Writer) *app {
	cat := catalog.New()
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	return &app{
		catalog: cat,
		calc:    calculator.New(policy.New(), cat),
		library: education.NewLibrary(cat),
		log:     log,
		out:     out,
	}
}

// printMarkdown renders md for the terminal, or prints it as is with -raw
func (a *app) printMarkdown(md string) {
	if !*rawOutput {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			if styled, err := r.Render(md); err == nil {
				fmt.Fprint(a.out, styled)
				return
			}
		}
	}
	fmt.Fprintln(a.out, md)
}

func main() {
	a := newApp(os.Stdout)
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&planCmd{app: a}, "planning")
	commander.Register(&wizardCmd{app: a, in: os.Stdin}, "planning")
	commander.Register(&instrumentsCmd{app: a}, "reference")
	commander.Register(&learnCmd{app: a}, "reference")
	commander.ImportantFlag("raw")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
