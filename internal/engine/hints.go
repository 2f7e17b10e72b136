package engine

import (
	"math/rand"

	"github.com/ssoylu/wordwheel/internal/config"
)

// HintTier identifies one of the three hint buttons.
type HintTier int

const (
	// TierSingle reveals one letter.
	TierSingle HintTier = iota

	// TierMulti reveals a small batch of letters.
	TierMulti

	// TierWord reveals the whole remaining answer.
	TierWord
)

// String returns the tier's display name.
func (t HintTier) String() string {
	switch t {
	case TierSingle:
		return "single letter"
	case TierMulti:
		return "multi letter"
	case TierWord:
		return "whole word"
	}
	return "unknown"
}

// Hints tracks hint availability: which tiers the player has reached and
// whether a hint is currently being processed. The unlock watermark is
// persisted so tiers never re-lock across sessions.
type Hints struct {
	store      Store
	cfg        config.Hints
	rng        *rand.Rand
	watermark  int
	processing bool
}

// NewHints restores the unlock watermark from the store.
func NewHints(store Store, cfg config.Hints, rng *rand.Rand) *Hints {
	return &Hints{
		store:     store,
		cfg:       cfg,
		rng:       rng,
		watermark: store.GetInt(KeyHintTier, 0),
	}
}

func (h *Hints) tierConfig(tier HintTier) config.HintTier {
	switch tier {
	case TierSingle:
		return h.cfg.Single
	case TierMulti:
		return h.cfg.Multi
	default:
		return h.cfg.Word
	}
}

// Cost returns the gold price of a tier.
func (h *Hints) Cost(tier HintTier) int {
	return h.tierConfig(tier).Cost
}

// Unlocked reports whether a tier is available to the player.
func (h *Hints) Unlocked(tier HintTier) bool {
	return int(tier) < h.watermark
}

// BumpWatermark advances the unlock watermark for the given global question
// counter and returns any tiers that just became available, in order.
func (h *Hints) BumpWatermark(counter int) []HintTier {
	var unlocked []HintTier
	for _, tier := range []HintTier{TierSingle, TierMulti, TierWord} {
		if int(tier) < h.watermark {
			continue
		}
		if counter >= h.tierConfig(tier).UnlockAfter {
			unlocked = append(unlocked, tier)
			h.watermark = int(tier) + 1
		}
	}
	if len(unlocked) > 0 {
		h.store.SetInt(KeyHintTier, h.watermark)
	}
	return unlocked
}

// CountFor returns how many letters a tier reveals for an answer of the
// given length with the given number of unfilled slots. The multi tier
// widens to a random count for long answers; the word tier takes whatever
// is left.
func (h *Hints) CountFor(tier HintTier, answerLen, unfilled int) int {
	var n int
	switch tier {
	case TierSingle:
		n = h.cfg.Single.Letters
	case TierMulti:
		n = h.cfg.Multi.Letters
		if answerLen > h.cfg.MultiLongAnswerLen && h.cfg.MultiMaxWhenLong > n {
			n += h.rng.Intn(h.cfg.MultiMaxWhenLong - n + 1)
		}
	case TierWord:
		n = unfilled
	}
	if n > unfilled {
		n = unfilled
	}
	return n
}

// TryLock claims the processing lock, rejecting overlapping hint requests.
func (h *Hints) TryLock() bool {
	if h.processing {
		return false
	}
	h.processing = true
	return true
}

// Unlock releases the processing lock.
func (h *Hints) Unlock() {
	h.processing = false
}

// Busy reports whether a hint is mid-flight.
func (h *Hints) Busy() bool { return h.processing }

// Reset drops the watermark back to fully locked.
func (h *Hints) Reset() {
	h.watermark = 0
	h.store.SetInt(KeyHintTier, 0)
}
