// Package catalog holds the static content libraries: investment instruments
// and education topics. Nothing here is mutated at runtime; lookups hand out
// copies so callers cannot alter the tables.
package catalog

import (
	"github.com/Dan9191/finplan-service/internal/models"
)

var instrumentOrder = []string{
	"ppf", "fd", "elss", "mf_equity", "us_index", "gold", "direct_equity", "smallcap", "reit",
}

// Categories in the order the education tabs show them
var categoryOrder = []string{"Online Banking", "Offline Banking"}

// Catalog provides read-only access to instruments and topics
type Catalog struct{}

// New returns the built-in catalog
func New() *Catalog {
	return &Catalog{}
}

// Instrument looks up an instrument by id
func (c *Catalog) Instrument(id string) (models.InstrumentRecord, bool) {
	rec, ok := instruments[id]
	if !ok {
		return models.InstrumentRecord{}, false
	}
	return cloneInstrument(rec), true
}

// Instruments returns every instrument in catalog order
func (c *Catalog) Instruments() []models.InstrumentRecord {
	out := make([]models.InstrumentRecord, 0, len(instrumentOrder))
	for _, id := range instrumentOrder {
		out = append(out, cloneInstrument(instruments[id]))
	}
	return out
}

// Topic looks up an education topic by id
func (c *Catalog) Topic(id string) (models.Topic, bool) {
	t, ok := topics[id]
	if !ok {
		return models.Topic{}, false
	}
	return cloneTopic(t), true
}

// Topics returns every topic in library order
func (c *Catalog) Topics() []models.Topic {
	out := make([]models.Topic, 0, len(topicOrder))
	for _, id := range topicOrder {
		out = append(out, cloneTopic(topics[id]))
	}
	return out
}

// Categories returns the topic categories in tab order
func (c *Catalog) Categories() []string {
	return append([]string{}, categoryOrder...)
}

func cloneInstrument(r models.InstrumentRecord) models.InstrumentRecord {
	r.Docs = append([]string{}, r.Docs...)
	r.Steps = append([]string{}, r.Steps...)
	r.ScamFlags = append([]string{}, r.ScamFlags...)
	return r
}

func cloneTopic(t models.Topic) models.Topic {
	t.FAQs = append([]models.FAQ{}, t.FAQs...)
	return t
}
