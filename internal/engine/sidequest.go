package engine

import (
	"github.com/ssoylu/wordwheel/internal/config"
	"github.com/ssoylu/wordwheel/internal/content"
)

// FactDue reports whether the fact popup fires after the given question.
// Facts appear on odd levels from FactMinLevel up, on one seeded question
// inside the trigger window, so a level always fires on the same question.
func FactDue(cfg config.Events, level, questionInLevel int) bool {
	if level < cfg.FactMinLevel || level%2 == 0 {
		return false
	}
	return questionInLevel == LevelSeed(level, cfg.WindowLow, cfg.WindowHigh, cfg.FactSalt)
}

// OfferDue reports whether the promotional offer fires after the given
// question. Offers take the even levels with their own salt so the two
// events never share a level.
func OfferDue(cfg config.Events, level, questionInLevel int) bool {
	if level < 2 || level%2 != 0 {
		return false
	}
	return questionInLevel == LevelSeed(level, cfg.WindowLow, cfg.WindowHigh, cfg.OfferSalt)
}

// FactFeed hands out facts in order, cycling through the list. The cursor
// is persisted so the feed resumes where it left off across sessions.
type FactFeed struct {
	store Store
	facts []content.Fact
	next  int
}

// NewFactFeed restores the feed cursor from the store.
func NewFactFeed(store Store, facts []content.Fact) *FactFeed {
	return &FactFeed{
		store: store,
		facts: facts,
		next:  store.GetInt(KeyFactIndex, 0),
	}
}

// Len returns the number of facts in the feed.
func (f *FactFeed) Len() int { return len(f.facts) }

// Next returns the next fact and advances the cursor. An empty feed reports
// ok=false.
func (f *FactFeed) Next() (content.Fact, bool) {
	if len(f.facts) == 0 {
		return content.Fact{}, false
	}
	fact := f.facts[f.next%len(f.facts)]
	f.next++
	f.store.SetInt(KeyFactIndex, f.next)
	return fact, true
}

// Reset rewinds the feed to the first fact.
func (f *FactFeed) Reset() {
	f.next = 0
	f.store.SetInt(KeyFactIndex, 0)
}
