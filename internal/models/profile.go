package models

// RiskTier selects both the allocation partition and the assumed growth rate
type RiskTier string

const (
	Conservative RiskTier = "conservative"
	Moderate     RiskTier = "moderate"
	Aggressive   RiskTier = "aggressive"
)

// RiskTiers lists the recognised tiers in display order
var RiskTiers = []RiskTier{Conservative, Moderate, Aggressive}

// Known reports whether t is one of the recognised tiers
func (t RiskTier) Known() bool {
	switch t {
	case Conservative, Moderate, Aggressive:
		return true
	}
	return false
}

// Resolve returns t, or Moderate for anything unrecognised
func (t RiskTier) Resolve() RiskTier {
	if t.Known() {
		return t
	}
	return Moderate
}

// UserProfile represents the answers collected by the wizard
type UserProfile struct {
	Name                string   `json:"name"`
	MonthlyIncome       float64  `json:"monthly_income"`
	FixedExpenses       float64  `json:"fixed_expenses"`
	ExistingInvestments float64  `json:"existing_investments"`
	Debt                float64  `json:"debt"` // outstanding balance, not a monthly payment
	Goals               []string `json:"goals"`
	RiskProfile         RiskTier `json:"risk_profile"`
}

// DefaultProfile returns the profile a fresh wizard starts from
func DefaultProfile() UserProfile {
	return UserProfile{
		Goals:       []string{},
		RiskProfile: Moderate,
	}
}

// Clone returns a copy that shares no slices with p
func (p UserProfile) Clone() UserProfile {
	out := p
	out.Goals = append([]string{}, p.Goals...)
	return out
}
