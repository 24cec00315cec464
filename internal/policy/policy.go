// Package policy maps a risk tier to its fixed allocation, recommended
// instruments and assumed growth rate. Unrecognised tiers resolve to
// moderate.
package policy

import (
	"github.com/Dan9191/finplan-service/internal/models"
)

type tierPolicy struct {
	segments    []models.AllocationSegment
	instruments []string
	annualRate  float64
}

var table = map[models.RiskTier]tierPolicy{
	models.Conservative: {
		segments: []models.AllocationSegment{
			{Label: "Fixed Deposits / Debt Funds", Percentage: 40, Color: "#276645"},
			{Label: "PPF / EPF", Percentage: 30, Color: "#3d9668"},
			{Label: "Large-Cap Equity", Percentage: 20, Color: "#c49a2b"},
			{Label: "Gold ETF", Percentage: 10, Color: "#e8c86a"},
		},
		instruments: []string{"ppf", "fd", "elss"},
		annualRate:  0.08,
	},
	models.Moderate: {
		segments: []models.AllocationSegment{
			{Label: "Equity Mutual Funds", Percentage: 45, Color: "#276645"},
			{Label: "PPF / Debt Funds", Percentage: 25, Color: "#3d9668"},
			{Label: "US Index / International", Percentage: 15, Color: "#c49a2b"},
			{Label: "Gold ETF", Percentage: 10, Color: "#e8c86a"},
			{Label: "Emergency Fund", Percentage: 5, Color: "#6ab891"},
		},
		instruments: []string{"mf_equity", "ppf", "us_index", "gold"},
		annualRate:  0.12,
	},
	models.Aggressive: {
		segments: []models.AllocationSegment{
			{Label: "Direct Equity / Mid-cap", Percentage: 50, Color: "#276645"},
			{Label: "Small-cap Mutual Funds", Percentage: 20, Color: "#3d9668"},
			{Label: "International Equity", Percentage: 15, Color: "#c49a2b"},
			{Label: "REIT / InvITs", Percentage: 10, Color: "#e8c86a"},
			{Label: "Crypto (max 5%)", Percentage: 5, Color: "#9b7519"},
		},
		instruments: []string{"direct_equity", "smallcap", "us_index", "reit"},
		annualRate:  0.16,
	},
}

// Policy is the built-in allocation table
type Policy struct{}

// New returns the built-in policy
func New() *Policy {
	return &Policy{}
}

func lookup(t models.RiskTier) tierPolicy {
	return table[t.Resolve()]
}

// Allocation returns the segments for t in display order
func (p *Policy) Allocation(t models.RiskTier) []models.AllocationSegment {
	return append([]models.AllocationSegment{}, lookup(t).segments...)
}

// InstrumentIDs returns the recommended instrument ids for t
func (p *Policy) InstrumentIDs(t models.RiskTier) []string {
	return append([]string{}, lookup(t).instruments...)
}

// AnnualRate returns the nominal annual growth rate assumed for t
func (p *Policy) AnnualRate(t models.RiskTier) float64 {
	return lookup(t).annualRate
}
