package engine

import (
	"time"

	"github.com/ssoylu/wordwheel/internal/config"
)

// Scoring converts solve time and word length into score deltas and owns the
// running total, per-level and high-score tallies. ApplyDelta is the single
// mutation path for all three fields.
type Scoring struct {
	store Store
	cfg   config.Scoring
	clock func() time.Time
	bus   *Bus

	timerOn bool
	startAt time.Time

	total int
	level int
	high  int
}

// NewScoring restores persisted tallies, or starts all at zero.
func NewScoring(store Store, cfg config.Scoring, clock func() time.Time, bus *Bus) *Scoring {
	return &Scoring{
		store: store,
		cfg:   cfg,
		clock: clock,
		bus:   bus,
		total: store.GetInt(KeyTotalScore, 0),
		level: store.GetInt(KeyLevelScore, 0),
		high:  store.GetInt(KeyHighScore, 0),
	}
}

// StartTimer records the solve start instant.
func (s *Scoring) StartTimer() {
	s.startAt = s.clock()
	s.timerOn = true
}

// StopTimer freezes the timer without consuming it.
func (s *Scoring) StopTimer() {
	s.timerOn = false
}

// ComputeDelta selects a per-letter multiplier from the elapsed solve time
// and returns wordLength * multiplier. Without a running timer it degrades to
// the untimed multiplier. The timer is consumed.
func (s *Scoring) ComputeDelta(wordLength int) int {
	if !s.timerOn {
		return wordLength * s.cfg.UntimedMultiplier
	}

	s.timerOn = false
	duration := s.clock().Sub(s.startAt).Seconds()

	multiplier := s.cfg.SlowMultiplier
	for _, tier := range s.cfg.Tiers {
		if duration < tier.UnderSeconds {
			multiplier = tier.Multiplier
			break
		}
	}
	return wordLength * multiplier
}

// ApplyDelta adds delta to the total and level scores, raises the high-score
// watermark if passed, persists all three and notifies the bus.
func (s *Scoring) ApplyDelta(delta int) {
	old := s.total
	s.total += delta
	s.level += delta
	if s.total > s.high {
		s.high = s.total
	}

	s.store.SetInt(KeyTotalScore, s.total)
	s.store.SetInt(KeyLevelScore, s.level)
	s.store.SetInt(KeyHighScore, s.high)

	s.bus.emitScoreChanged(old, s.total)
}

// ResetLevelScore zeroes the per-level tally; called when a new level begins.
func (s *Scoring) ResetLevelScore() {
	s.level = 0
	s.store.SetInt(KeyLevelScore, 0)
}

// Reset zeroes the total and level scores. The high score is a record across
// game restarts and stays untouched.
func (s *Scoring) Reset() {
	old := s.total
	s.total = 0
	s.level = 0
	s.timerOn = false
	s.store.SetInt(KeyTotalScore, 0)
	s.store.SetInt(KeyLevelScore, 0)
	s.bus.emitScoreChanged(old, 0)
}

// Total returns the running total score.
func (s *Scoring) Total() int { return s.total }

// LevelScore returns the current-level score.
func (s *Scoring) LevelScore() int { return s.level }

// High returns the high-score watermark.
func (s *Scoring) High() int { return s.high }
