package policy

import (
	"testing"

	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestAllocationSumsToHundred(t *testing.T) {
	p := New()
	for _, tier := range models.RiskTiers {
		t.Run(string(tier), func(t *testing.T) {
			total := 0
			for _, seg := range p.Allocation(tier) {
				if seg.Percentage < 0 || seg.Percentage > 100 {
					t.Errorf("segment %q has percentage %d", seg.Label, seg.Percentage)
				}
				total += seg.Percentage
			}
			if total != 100 {
				t.Errorf("allocation sums to %d, want 100", total)
			}
		})
	}
}

func TestUnknownTierFallsBackToModerate(t *testing.T) {
	p := New()
	for _, tier := range []models.RiskTier{"unknown_tier", "", "MODERATE", "yolo"} {
		if diff := cmp.Diff(p.Allocation(models.Moderate), p.Allocation(tier)); diff != "" {
			t.Errorf("Allocation(%q) mismatch (-moderate +got):\n%s", tier, diff)
		}
		if diff := cmp.Diff(p.InstrumentIDs(models.Moderate), p.InstrumentIDs(tier)); diff != "" {
			t.Errorf("InstrumentIDs(%q) mismatch (-moderate +got):\n%s", tier, diff)
		}
		if got := p.AnnualRate(tier); got != 0.12 {
			t.Errorf("AnnualRate(%q) = %v, want 0.12", tier, got)
		}
	}
}

func TestRates(t *testing.T) {
	p := New()
	want := map[models.RiskTier]float64{
		models.Conservative: 0.08,
		models.Moderate:     0.12,
		models.Aggressive:   0.16,
	}
	for tier, rate := range want {
		if got := p.AnnualRate(tier); got != rate {
			t.Errorf("AnnualRate(%s) = %v, want %v", tier, got, rate)
		}
	}
}

func TestAllocationIsACopy(t *testing.T) {
	p := New()
	segs := p.Allocation(models.Aggressive)
	segs[0].Percentage = 99
	if p.Allocation(models.Aggressive)[0].Percentage != 50 {
		t.Error("mutating a returned allocation changed the table")
	}
}
