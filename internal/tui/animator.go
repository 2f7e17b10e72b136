// Package tui provides the Bubble Tea front end for the word-connect game:
// input mapping, board and letter-wheel rendering, popup flow and SSH serving
// via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ssoylu/wordwheel/internal/config"
	"github.com/ssoylu/wordwheel/internal/engine"
)

// EffectDoneMsg reports that a timed effect has finished.
type EffectDoneMsg struct {
	ID int
}

// Animator bridges the engine's effect continuations onto the Bubble Tea
// message loop. Play queues the effect with its configured duration; Drain
// turns queued effects into tea.Tick commands; Complete fires the stored
// continuation when the tick lands.
type Animator struct {
	timing config.Timing

	nextID  int
	queued  []queuedEffect
	pending map[int]pendingEffect
	active  map[engine.Effect]int
}

type queuedEffect struct {
	id       int
	duration time.Duration
}

type pendingEffect struct {
	effect engine.Effect
	done   func()
}

// NewAnimator creates an animator with the given effect timings.
func NewAnimator(timing config.Timing) *Animator {
	return &Animator{
		timing:  timing,
		pending: make(map[int]pendingEffect),
		active:  make(map[engine.Effect]int),
	}
}

// Play implements engine.Animator. Zero-duration effects complete
// immediately without touching the message loop.
func (a *Animator) Play(effect engine.Effect, done func()) {
	d := a.durationFor(effect)
	if d <= 0 {
		done()
		return
	}

	a.nextID++
	id := a.nextID
	a.pending[id] = pendingEffect{effect: effect, done: done}
	a.active[effect]++
	a.queued = append(a.queued, queuedEffect{id: id, duration: d})
}

func (a *Animator) durationFor(effect engine.Effect) time.Duration {
	var secs float64
	switch effect {
	case engine.EffectShake:
		secs = a.timing.ShakeSeconds
	case engine.EffectResolve:
		secs = a.timing.ResolveSeconds
	case engine.EffectHintCooldown:
		secs = a.timing.HintCooldownSeconds
	case engine.EffectCompletionDelay:
		secs = a.timing.CompletionDelaySeconds
	case engine.EffectWheelSpin:
		secs = a.timing.WheelSpinSeconds
	case engine.EffectReveal:
		// Reveals pop in place; the cooldown effect provides the pacing.
		secs = 0
	}
	return time.Duration(secs * float64(time.Second))
}

// Drain converts queued effects into tick commands. Call after every engine
// interaction and after every Complete.
func (a *Animator) Drain() tea.Cmd {
	if len(a.queued) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(a.queued))
	for _, q := range a.queued {
		id := q.id
		cmds = append(cmds, tea.Tick(q.duration, func(time.Time) tea.Msg {
			return EffectDoneMsg{ID: id}
		}))
	}
	a.queued = a.queued[:0]
	return tea.Batch(cmds...)
}

// Complete fires the continuation for a finished effect. The continuation
// may queue further effects; follow with another Drain.
func (a *Animator) Complete(id int) {
	p, ok := a.pending[id]
	if !ok {
		return
	}
	delete(a.pending, id)
	if a.active[p.effect] > 0 {
		a.active[p.effect]--
	}
	p.done()
}

// Active reports whether any effect of the given kind is still running.
func (a *Animator) Active(effect engine.Effect) bool {
	return a.active[effect] > 0
}

// Busy reports whether any effect is running or queued.
func (a *Animator) Busy() bool {
	return len(a.pending) > 0 || len(a.queued) > 0
}
