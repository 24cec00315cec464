package catalog

import (
	"testing"
)

func TestInstrumentsComplete(t *testing.T) {
	c := New()
	all := c.Instruments()
	if len(all) != len(instruments) {
		t.Fatalf("Instruments() returned %d records, table has %d", len(all), len(instruments))
	}
	for _, rec := range all {
		if rec.ID == "" || rec.Name == "" {
			t.Errorf("instrument %+v missing id or name", rec)
		}
		if len(rec.Steps) == 0 {
			t.Errorf("instrument %q has no guidance steps", rec.ID)
		}
		if len(rec.ScamFlags) == 0 {
			t.Errorf("instrument %q has no scam flags", rec.ID)
		}
		got, ok := c.Instrument(rec.ID)
		if !ok || got.Name != rec.Name {
			t.Errorf("Instrument(%q) = %v, %v", rec.ID, got.Name, ok)
		}
	}
}

func TestInstrumentUnknown(t *testing.T) {
	if _, ok := New().Instrument("bitcoin_mining_pool"); ok {
		t.Error("unknown instrument reported as found")
	}
}

func TestInstrumentReturnsCopy(t *testing.T) {
	c := New()
	rec, _ := c.Instrument("ppf")
	rec.Steps[0] = "tampered"
	again, _ := c.Instrument("ppf")
	if again.Steps[0] == "tampered" {
		t.Error("mutating a returned record changed the catalog")
	}
}

func TestTopics(t *testing.T) {
	c := New()
	all := c.Topics()
	if len(all) != 8 {
		t.Fatalf("got %d topics, want 8", len(all))
	}
	known := map[string]bool{}
	for _, cat := range c.Categories() {
		known[cat] = true
	}
	for _, topic := range all {
		if !known[topic.Category] {
			t.Errorf("topic %q has unlisted category %q", topic.ID, topic.Category)
		}
		if len(topic.FAQs) != 3 {
			t.Errorf("topic %q has %d FAQs, want 3", topic.ID, len(topic.FAQs))
		}
		if topic.BeginnerExplanation == "" || topic.ExpertExplanation == "" {
			t.Errorf("topic %q is missing an explanation", topic.ID)
		}
	}
	if all[0].ID != "debit" || all[7].ID != "docs" {
		t.Errorf("unexpected topic order: first %q last %q", all[0].ID, all[7].ID)
	}
}
