package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/google/subcommands"
)

type instrumentsCmd struct {
	*app
	risk string
}

func (*instrumentsCmd) Name() string     { return "instruments" }
func (*instrumentsCmd) Synopsis() string { return "list investment instruments" }
func (*instrumentsCmd) Usage() string {
	return `instruments [-risk <tier>] [id]

List the instrument catalog, the instruments recommended for a risk tier,
or the full card of one instrument.
`
}

func (c *instrumentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.risk, "risk", "", "only instruments recommended for this risk tier")
}

func (c *instrumentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		rec, ok := c.catalog.Instrument(f.Arg(0))
		if !ok {
			fmt.Fprintf(c.out, "unknown instrument %q\n", f.Arg(0))
			return subcommands.ExitFailure
		}
		c.printMarkdown(instrumentMarkdown(rec))
		return subcommands.ExitSuccess
	}

	list := c.catalog.Instruments()
	title := "Investment instruments"
	if c.risk != "" {
		tier := models.RiskTier(strings.ToLower(c.risk)).Resolve()
		list = c.calc.InstrumentsFor(tier)
		title = fmt.Sprintf("Instruments for a %s investor", tier)
	}
	c.printMarkdown(instrumentTable(title, list))
	return subcommands.ExitSuccess
}

func instrumentTable(title string, list []models.InstrumentRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n| | Instrument | Returns | Lock-in |\n|---|---|---|---|\n", title)
	for _, r := range list {
		fmt.Fprintf(&b, "| %s | **%s** (`%s`) | %s | %s |\n", r.Icon, r.Name, r.ID, r.ReturnRange, r.LockIn)
	}
	return b.String()
}

func instrumentMarkdown(r models.InstrumentRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n%s\n\n", r.Icon, r.Name, r.ShortDesc)
	fmt.Fprintf(&b, "- **Returns:** %s (%s)\n- **Lock-in:** %s\n- **Liquidity:** %s\n- **Tax:** %s\n\n", r.ReturnRange, r.ReturnLabel, r.LockIn, r.Liquidity, r.TaxImplications)
	b.WriteString("## How to invest\n\n")
	for i, s := range r.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	fmt.Fprintf(&b, "\n**Documents:** %s\n\n**Risks:** %s\n\n**Avoid if:** %s\n\n## Scam red flags\n\n", strings.Join(r.Docs, ", "), r.Risks, r.WhoAvoid)
	for _, s := range r.ScamFlags {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	return b.String()
}
