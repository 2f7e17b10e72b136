package engine

import (
	"errors"
	"math/rand"
)

// ErrNoChoices is returned when a weighted selection is attempted over an
// empty choice list. That is a caller bug, not a recoverable game state.
var ErrNoChoices = errors.New("engine: weighted selection over empty choice list")

// PickWeighted returns an index chosen by weighted random selection: index i
// wins with probability weights[i]/sum(weights). Weights must be positive
// integers, so the cumulative walk always lands on a choice; the trailing
// fallback to the first index exists only to keep the function total.
func PickWeighted(rng *rand.Rand, weights []int) (int, error) {
	if len(weights) == 0 {
		return 0, ErrNoChoices
	}

	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, ErrNoChoices
	}

	roll := rng.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i, nil
		}
	}
	return 0, nil
}

// LevelSeed returns a deterministic pseudo-random integer in [lo, hi) derived
// from the level number and a salt. The same (level, salt) pair always
// produces the same value, so per-level trigger points survive restarts and
// replays. Distinct salts keep independent event types from colliding on the
// same level.
func LevelSeed(level, lo, hi int, salt int64) int {
	if hi <= lo {
		return lo
	}
	rng := rand.New(rand.NewSource(int64(level) * salt))
	return lo + rng.Intn(hi-lo)
}
