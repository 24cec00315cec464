package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Dan9191/finplan-service/internal/dashboard"
	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/Dan9191/finplan-service/internal/report"
	"github.com/google/subcommands"
)

type planCmd struct {
	*app
	name        string
	income      float64
	expenses    float64
	investments float64
	debt        float64
	goals       string
	risk        string
	format      string
	output      string
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "compute a financial plan from flags" }
func (*planCmd) Usage() string {
	return `plan -income <n> [-expenses <n>] [-debt <n>] [-risk conservative|moderate|aggressive] [-format markdown|json|pdf]

Compute the allocation, recommended instruments and growth projections for a profile.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "your name")
	f.Float64Var(&c.income, "income", 0, "monthly take-home income")
	f.Float64Var(&c.expenses, "expenses", 0, "fixed monthly expenses")
	f.Float64Var(&c.investments, "investments", 0, "existing investments")
	f.Float64Var(&c.debt, "debt", 0, "total outstanding debt")
	f.StringVar(&c.goals, "goals", "", "comma separated goals")
	f.StringVar(&c.risk, "risk", string(models.Moderate), "risk profile")
	f.StringVar(&c.format, "format", "markdown", "output format: markdown, json or pdf")
	f.StringVar(&c.output, "o", "financial-blueprint.pdf", "output file for -format pdf")
}

func (c *planCmd) profile() models.UserProfile {
	p := models.DefaultProfile()
	p.Name = c.name
	p.MonthlyIncome = c.income
	p.FixedExpenses = c.expenses
	p.ExistingInvestments = c.investments
	p.Debt = c.debt
	p.RiskProfile = models.RiskTier(strings.ToLower(c.risk))
	for _, g := range strings.Split(c.goals, ",") {
		if g = strings.TrimSpace(g); g != "" {
			p.Goals = append(p.Goals, g)
		}
	}
	return p
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := c.profile()
	res := c.calc.Plan(p)
	d := dashboard.Build(p, res)

	switch c.format {
	case "json":
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plan: %v\n", err)
			return subcommands.ExitFailure
		}
	case "pdf":
		pdf, err := report.Blueprint(d, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.output, pdf, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(c.out, "Blueprint written to %s\n", c.output)
	case "markdown":
		md, err := dashboard.Markdown(d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering plan: %v\n", err)
			return subcommands.ExitFailure
		}
		c.printMarkdown(md)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
