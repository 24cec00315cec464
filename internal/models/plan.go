package models

// ProjectionPoint represents the projected value of monthly contributions at one horizon
type ProjectionPoint struct {
	HorizonYears     int   `json:"horizon_years"`
	ProjectedCorpus  int64 `json:"projected_corpus"`
	TotalContributed int64 `json:"total_contributed"`
}

// PlanningResult aggregates everything computed for one completed wizard
type PlanningResult struct {
	RiskProfile         RiskTier            `json:"risk_profile"`
	DisposableIncome    float64             `json:"disposable_income"`
	MonthlyContribution float64             `json:"monthly_contribution"`
	Allocation          []AllocationSegment `json:"allocation"`
	Instruments         []InstrumentRecord  `json:"instruments"`
	Projections         []ProjectionPoint   `json:"projections"`
}
