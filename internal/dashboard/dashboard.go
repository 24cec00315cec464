// Package dashboard turns a PlanningResult into the view model the results
// page is drawn from: stat cards, donut slices, projection bars and
// instrument cards. It makes no decisions of its own.
package dashboard

import (
	"math"
	"strconv"
	"strings"

	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/Dan9191/finplan-service/internal/wizard"
)

// SliceGap is the angular gap left after each donut slice, in radians
const SliceGap = 0.03

// InvestableShare is the share of disposable income shown as investable
const InvestableShare = 0.7

// Header personalises the dashboard
type Header struct {
	Name   string `json:"name"`
	Income string `json:"income"`
	Risk   string `json:"risk"`
}

// StatCard is one headline figure
type StatCard struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// Slice is one donut segment; angles are in radians from the positive x axis
type Slice struct {
	Label      string  `json:"label"`
	Percentage int     `json:"percentage"`
	Color      string  `json:"color"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
}

// Bar is one projection horizon; heights are percentages of the tallest corpus
type Bar struct {
	Label       string  `json:"label"`
	Years       int     `json:"years"`
	CorpusPct   float64 `json:"corpus_pct"`
	InvestedPct float64 `json:"invested_pct"`
	Corpus      string  `json:"corpus"`
	Invested    string  `json:"invested"`
	Tip         string  `json:"tip"`
}

// Detail is a labelled fact on an instrument card
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Card is an expandable instrument card
type Card struct {
	ID              string   `json:"id"`
	Icon            string   `json:"icon"`
	Name            string   `json:"name"`
	AllocationLabel string   `json:"allocation_label"`
	AllocationPct   *int     `json:"allocation_pct"`
	AllocationText  string   `json:"allocation_text"`
	ReturnRange     string   `json:"return_range"`
	ReturnLabel     string   `json:"return_label"`
	Details         []Detail `json:"details"`
	Steps           []string `json:"steps"`
	Docs            []string `json:"docs"`
	Risks           string   `json:"risks"`
	WhoAvoid        string   `json:"who_avoid"`
	ScamFlags       []string `json:"scam_flags"`
}

// Dashboard is the complete results view
type Dashboard struct {
	Header        Header               `json:"header"`
	Stats         []StatCard           `json:"stats"`
	Slices        []Slice              `json:"slices"`
	Bars          []Bar                `json:"bars"`
	Cards         []Card               `json:"cards"`
	Encouragement wizard.Encouragement `json:"encouragement"`
}

// Build assembles the dashboard for profile and result
func Build(p models.UserProfile, r models.PlanningResult) Dashboard {
	name := p.Name
	if name == "" {
		name = wizard.DefaultName
	}
	enc, _ := wizard.EncouragementFor(wizard.TotalSteps)

	return Dashboard{
		Header: Header{
			Name:   name,
			Income: FormatINR(p.MonthlyIncome),
			Risk:   Capitalize(string(r.RiskProfile)),
		},
		Stats:         Stats(r),
		Slices:        Slices(r.Allocation),
		Bars:          Bars(r.Projections),
		Cards:         Cards(r.Instruments, r.Allocation),
		Encouragement: enc,
	}
}

// Stats returns the disposable, investable and 10-year corpus cards
func Stats(r models.PlanningResult) []StatCard {
	investable := math.Round(r.DisposableIncome * InvestableShare)
	var tenYear float64
	if len(r.Projections) > 1 {
		tenYear = float64(r.Projections[1].ProjectedCorpus)
	}
	return []StatCard{
		{Key: "disposable", Label: "Monthly Disposable Income", Value: r.DisposableIncome, Text: FormatINR(r.DisposableIncome)},
		{Key: "investable", Label: "Recommended Monthly Investment", Value: investable, Text: FormatINR(investable)},
		{Key: "corpus_10yr", Label: "Projected Corpus in 10 Years", Value: tenYear, Text: FormatINR(tenYear)},
	}
}

// Slices lays the allocation out clockwise from twelve o'clock
func Slices(allocation []models.AllocationSegment) []Slice {
	start := -math.Pi / 2
	out := make([]Slice, 0, len(allocation))
	for _, seg := range allocation {
		sweep := float64(seg.Percentage)/100*(2*math.Pi) - SliceGap
		out = append(out, Slice{
			Label:      seg.Label,
			Percentage: seg.Percentage,
			Color:      seg.Color,
			StartAngle: start,
			EndAngle:   start + sweep,
		})
		start += sweep + SliceGap
	}
	return out
}

// Bars scales each projection against the last (largest) horizon
func Bars(projections []models.ProjectionPoint) []Bar {
	maxVal := 1.0
	if n := len(projections); n > 0 && projections[n-1].ProjectedCorpus != 0 {
		maxVal = float64(projections[n-1].ProjectedCorpus)
	}
	out := make([]Bar, 0, len(projections))
	for _, p := range projections {
		out = append(out, Bar{
			Label:       strconv.Itoa(p.HorizonYears) + "Y",
			Years:       p.HorizonYears,
			CorpusPct:   float64(p.ProjectedCorpus) / maxVal * 100,
			InvestedPct: float64(p.TotalContributed) / maxVal * 100,
			Corpus:      FormatINR(float64(p.ProjectedCorpus)),
			Invested:    FormatINR(float64(p.TotalContributed)),
			Tip:         ShortINR(float64(p.ProjectedCorpus)),
		})
	}
	return out
}

// Cards builds one card per instrument. The allocation percentage is taken
// from the first segment whose label contains the first word of the
// instrument name.
func Cards(instruments []models.InstrumentRecord, allocation []models.AllocationSegment) []Card {
	out := make([]Card, 0, len(instruments))
	for _, inv := range instruments {
		card := Card{
			ID:              inv.ID,
			Icon:            inv.Icon,
			Name:            inv.Name,
			AllocationLabel: inv.AllocationLabel,
			AllocationText:  "—",
			ReturnRange:     inv.ReturnRange,
			ReturnLabel:     inv.ReturnLabel,
			Details: []Detail{
				{Label: "Lock-In", Value: inv.LockIn},
				{Label: "Liquidity", Value: inv.Liquidity},
				{Label: "Tax", Value: inv.TaxImplications},
			},
			Steps:     inv.Steps,
			Docs:      inv.Docs,
			Risks:     inv.Risks,
			WhoAvoid:  inv.WhoAvoid,
			ScamFlags: inv.ScamFlags,
		}
		if pct, ok := matchAllocation(inv.Name, allocation); ok {
			card.AllocationPct = &pct
			card.AllocationText = strconv.Itoa(pct)
		}
		out = append(out, card)
	}
	return out
}

func matchAllocation(name string, allocation []models.AllocationSegment) (int, bool) {
	first := strings.ToLower(name)
	if i := strings.IndexByte(first, ' '); i >= 0 {
		first = first[:i]
	}
	for _, seg := range allocation {
		if strings.Contains(strings.ToLower(seg.Label), first) {
			return seg.Percentage, true
		}
	}
	return 0, false
}
