package engine

import (
	"testing"

	"github.com/ssoylu/wordwheel/internal/config"
	"github.com/ssoylu/wordwheel/internal/content"
)

func TestFactDueOddLevelsOnly(t *testing.T) {
	cfg := config.Default().Events

	for level := 1; level <= 40; level++ {
		fires := 0
		for q := 1; q <= 15; q++ {
			if FactDue(cfg, level, q) {
				fires++
			}
		}
		switch {
		case level < cfg.FactMinLevel || level%2 == 0:
			if fires != 0 {
				t.Fatalf("level %d: facts fired %d times, want 0", level, fires)
			}
		default:
			if fires != 1 {
				t.Fatalf("level %d: facts fired %d times, want exactly 1", level, fires)
			}
		}
	}
}

func TestOfferDueEvenLevelsOnly(t *testing.T) {
	cfg := config.Default().Events

	for level := 1; level <= 40; level++ {
		fires := 0
		for q := 1; q <= 15; q++ {
			if OfferDue(cfg, level, q) {
				fires++
			}
		}
		if level%2 != 0 {
			if fires != 0 {
				t.Fatalf("odd level %d: offers fired %d times", level, fires)
			}
			continue
		}
		if fires != 1 {
			t.Fatalf("even level %d: offers fired %d times, want exactly 1", level, fires)
		}
	}
}

func TestFactDueStableAcrossReplays(t *testing.T) {
	cfg := config.Default().Events
	trigger := LevelSeed(7, cfg.WindowLow, cfg.WindowHigh, cfg.FactSalt)
	for i := 0; i < 20; i++ {
		if !FactDue(cfg, 7, trigger) {
			t.Fatal("trigger question changed between replays")
		}
	}
}

func TestFactFeedCyclesAndPersists(t *testing.T) {
	store := NewMemStore()
	facts := []content.Fact{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}, {ID: 3, Text: "c"}}

	feed := NewFactFeed(store, facts)
	for _, want := range []int{1, 2, 3, 1} {
		fact, ok := feed.Next()
		if !ok || fact.ID != want {
			t.Fatalf("Next = id %d ok=%v, want id %d", fact.ID, ok, want)
		}
	}

	// A new feed over the same store resumes at the persisted cursor.
	resumed := NewFactFeed(store, facts)
	if fact, _ := resumed.Next(); fact.ID != 2 {
		t.Fatalf("resumed Next = id %d, want 2", fact.ID)
	}
}

func TestFactFeedEmpty(t *testing.T) {
	feed := NewFactFeed(NewMemStore(), nil)
	if _, ok := feed.Next(); ok {
		t.Fatal("empty feed returned a fact")
	}
}
