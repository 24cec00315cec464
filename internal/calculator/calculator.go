// Package calculator turns a UserProfile into a PlanningResult: disposable
// income, an allocation, recommended instruments and compound-growth
// projections. Every function is pure.
package calculator

import (
	"math"

	"github.com/Dan9191/finplan-service/internal/models"
)

const (
	// DefaultDebtServiceRatio approximates the monthly repayment on an
	// outstanding debt balance. It is a heuristic, not a loan formula.
	DefaultDebtServiceRatio = 0.02
	// DefaultContributionShare is the share of disposable income invested monthly.
	DefaultContributionShare = 0.7
)

// DefaultHorizons are the projection horizons in years
var DefaultHorizons = []int{5, 10, 15, 20, 25}

// AllocationPolicy resolves a risk tier to its allocation, instruments and rate
type AllocationPolicy interface {
	Allocation(models.RiskTier) []models.AllocationSegment
	InstrumentIDs(models.RiskTier) []string
	AnnualRate(models.RiskTier) float64
}

// InstrumentCatalog looks up instrument records by id
type InstrumentCatalog interface {
	Instrument(id string) (models.InstrumentRecord, bool)
}

// Calculator computes planning results from a policy and a catalog
type Calculator struct {
	policy  AllocationPolicy
	catalog InstrumentCatalog

	DebtServiceRatio  float64
	ContributionShare float64
	Horizons          []int
}

// New initializes a calculator with the default constants
func New(policy AllocationPolicy, catalog InstrumentCatalog) *Calculator {
	return &Calculator{
		policy:            policy,
		catalog:           catalog,
		DebtServiceRatio:  DefaultDebtServiceRatio,
		ContributionShare: DefaultContributionShare,
		Horizons:          append([]int{}, DefaultHorizons...),
	}
}

// DisposableIncome is income left after fixed expenses and estimated debt
// service, never below zero.
func (c *Calculator) DisposableIncome(p models.UserProfile) float64 {
	return math.Max(0, p.MonthlyIncome-p.FixedExpenses-p.Debt*c.DebtServiceRatio)
}

// AllocationFor returns the allocation segments for tier
func (c *Calculator) AllocationFor(tier models.RiskTier) []models.AllocationSegment {
	return c.policy.Allocation(tier)
}

// InstrumentsFor returns the recommended instruments for tier. Ids missing
// from the catalog are dropped.
func (c *Calculator) InstrumentsFor(tier models.RiskTier) []models.InstrumentRecord {
	ids := c.policy.InstrumentIDs(tier)
	out := make([]models.InstrumentRecord, 0, len(ids))
	for _, id := range ids {
		if rec, ok := c.catalog.Instrument(id); ok {
			out = append(out, rec)
		}
	}
	return out
}

// MonthlyContribution is the amount invested each month out of disposable income
func (c *Calculator) MonthlyContribution(disposable float64) float64 {
	return disposable * c.ContributionShare
}

// ProjectGrowth projects monthly contributions over each horizon, compounded monthly
func (c *Calculator) ProjectGrowth(disposable float64, tier models.RiskTier) []models.ProjectionPoint {
	contribution := c.MonthlyContribution(disposable)
	rate := c.policy.AnnualRate(tier)

	points := make([]models.ProjectionPoint, 0, len(c.Horizons))
	for _, years := range c.Horizons {
		months := years * 12
		points = append(points, models.ProjectionPoint{
			HorizonYears:     years,
			ProjectedCorpus:  int64(math.Round(FutureValue(contribution, rate, months))),
			TotalContributed: int64(math.Round(contribution * float64(months))),
		})
	}
	return points
}

// Plan runs the whole pipeline for a profile
func (c *Calculator) Plan(p models.UserProfile) models.PlanningResult {
	disposable := c.DisposableIncome(p)
	return models.PlanningResult{
		RiskProfile:         p.RiskProfile.Resolve(),
		DisposableIncome:    disposable,
		MonthlyContribution: c.MonthlyContribution(disposable),
		Allocation:          c.AllocationFor(p.RiskProfile),
		Instruments:         c.InstrumentsFor(p.RiskProfile),
		Projections:         c.ProjectGrowth(disposable, p.RiskProfile),
	}
}

// FutureValue of an ordinary annuity paying contribution at the end of each
// month for months periods at a nominal annual rate.
func FutureValue(contribution, annualRate float64, months int) float64 {
	r := annualRate / 12
	if r == 0 {
		return contribution * float64(months)
	}
	return contribution * (math.Pow(1+r, float64(months)) - 1) / r
}
