package engine

import (
	"errors"
	"math/rand"

	"github.com/ssoylu/wordwheel/internal/config"
)

// ErrWheelBusy is returned when a spin is requested while one is running.
var ErrWheelBusy = errors.New("wheel: spin already in progress")

// Wheel is the reward wheel: a weighted draw over the configured slices.
// The outcome is decided up front; the spin animation only plays toward it.
type Wheel struct {
	cfg  config.Wheel
	rng  *rand.Rand
	busy bool
}

// NewWheel builds a wheel over the configured slices.
func NewWheel(cfg config.Wheel, rng *rand.Rand) *Wheel {
	return &Wheel{cfg: cfg, rng: rng}
}

// Slices returns the configured prize slices in wheel order.
func (w *Wheel) Slices() []config.WheelSlice { return w.cfg.Slices }

// Busy reports whether a spin is still settling.
func (w *Wheel) Busy() bool { return w.busy }

// Spin draws the landing slice and marks the wheel busy until Settle.
func (w *Wheel) Spin() (slice int, prize int, err error) {
	if w.busy {
		return 0, 0, ErrWheelBusy
	}
	weights := make([]int, len(w.cfg.Slices))
	for i, s := range w.cfg.Slices {
		weights[i] = s.Weight
	}
	slice, err = PickWeighted(w.rng, weights)
	if err != nil {
		return 0, 0, err
	}
	w.busy = true
	return slice, w.cfg.Slices[slice].Prize, nil
}

// Settle readies the wheel for the next spin. Called once the spin effect
// finishes.
func (w *Wheel) Settle() {
	w.busy = false
}
