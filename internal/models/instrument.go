package models

// InstrumentRecord represents a recommended investment instrument and its guidance
type InstrumentRecord struct {
	ID              string   `json:"id"`
	Icon            string   `json:"icon"`
	Name            string   `json:"name"`
	ShortDesc       string   `json:"short_desc"`
	ReturnRange     string   `json:"return_range"`
	ReturnLabel     string   `json:"return_label"`
	AllocationLabel string   `json:"allocation_label"`
	LockIn          string   `json:"lock_in"`
	Liquidity       string   `json:"liquidity"`
	TaxImplications string   `json:"tax_implications"`
	Docs            []string `json:"docs"`
	Steps           []string `json:"steps"`
	Risks           string   `json:"risks"`
	WhoAvoid        string   `json:"who_avoid"`
	ScamFlags       []string `json:"scam_flags"`
}
