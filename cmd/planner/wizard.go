package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Dan9191/finplan-service/internal/dashboard"
	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/Dan9191/finplan-service/internal/wizard"
	"github.com/google/subcommands"
)

type wizardCmd struct {
	*app
	in io.Reader
}

func (*wizardCmd) Name() string     { return "wizard" }
func (*wizardCmd) Synopsis() string { return "build a plan step by step" }
func (*wizardCmd) Usage() string {
	return `wizard

Answer five short questions and get your financial blueprint. Type "back"
at any prompt to return to the previous step.
`
}

func (c *wizardCmd) SetFlags(f *flag.FlagSet) {}

func (c *wizardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := c.run(bufio.NewScanner(c.in))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	md, err := dashboard.Markdown(dashboard.Build(st.Profile, *st.Result))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering plan: %v\n", err)
		return subcommands.ExitFailure
	}
	c.printMarkdown(md)
	return subcommands.ExitSuccess
}

// run drives the machine from line input until the risk choice on the last
// step is confirmed
func (c *wizardCmd) run(sc *bufio.Scanner) (models.WizardState, error) {
	m := wizard.NewMachine(c.calc, c.log)
	st := m.Start()

	for {
		enc, _ := wizard.EncouragementFor(st.CurrentStep)
		fmt.Fprintf(c.out, "\n[%d/%d] %s %s\n", st.CurrentStep, wizard.TotalSteps, enc.Emoji, enc.Text)

		var f wizard.Fields
		back := false
		for _, q := range questions[st.CurrentStep] {
			fmt.Fprintf(c.out, "%s: ", q.prompt)
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return st, fmt.Errorf("failed to read answer: %w", err)
				}
				return st, io.ErrUnexpectedEOF
			}
			answer := strings.TrimSpace(sc.Text())
			if strings.EqualFold(answer, "back") {
				back = true
				break
			}
			q.set(&f, answer)
		}

		var tr wizard.Transition
		switch {
		case back:
			st, tr = m.Prev(st, f)
		case st.CurrentStep == wizard.TotalSteps:
			st, _ = m.GoTo(st, wizard.TotalSteps, f)
			return st, nil
		default:
			st, tr = m.Next(st, f)
		}
		if tr.Notice != nil {
			fmt.Fprintf(c.out, "%s %s\n", tr.Notice.Icon, tr.Notice.Message)
		}
	}
}

type question struct {
	prompt string
	set    func(*wizard.Fields, string)
}

func number(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return -1
	}
	return v
}

var questions = map[int][]question{
	wizard.StepIncome: {
		{"Your name", func(f *wizard.Fields, s string) { f.Name = s }},
		{"Monthly take-home income (₹)", func(f *wizard.Fields, s string) { f.Income = number(s) }},
	},
	wizard.StepExpenses: {
		{"Fixed monthly expenses (₹)", func(f *wizard.Fields, s string) { f.Expenses = number(s) }},
		{"Existing investments (₹)", func(f *wizard.Fields, s string) { f.Investments = max(0, number(s)) }},
	},
	wizard.StepDebt: {
		{"Total outstanding debt (₹)", func(f *wizard.Fields, s string) { f.Debt = max(0, number(s)) }},
	},
	wizard.StepGoals: {
		{"Goals, comma separated", func(f *wizard.Fields, s string) {
			for _, g := range strings.Split(s, ",") {
				if g = strings.TrimSpace(g); g != "" {
					f.Goals = append(f.Goals, g)
				}
			}
		}},
	},
	wizard.StepRisk: {
		{"Risk profile (conservative, moderate, aggressive)", func(f *wizard.Fields, s string) { f.Risk = s }},
	},
}
