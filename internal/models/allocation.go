package models

// AllocationSegment represents one named slice of a portfolio breakdown
type AllocationSegment struct {
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}
