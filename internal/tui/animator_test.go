package tui

import (
	"testing"

	"github.com/ssoylu/wordwheel/internal/config"
	"github.com/ssoylu/wordwheel/internal/engine"
)

func TestAnimatorLifecycle(t *testing.T) {
	a := NewAnimator(config.Default().Timing)

	fired := false
	a.Play(engine.EffectShake, func() { fired = true })

	if fired {
		t.Fatal("continuation fired before the effect completed")
	}
	if !a.Busy() || !a.Active(engine.EffectShake) {
		t.Fatal("animator should be busy with a queued shake")
	}

	cmd := a.Drain()
	if cmd == nil {
		t.Fatal("Drain returned no command for a queued effect")
	}
	if a.Drain() != nil {
		t.Fatal("second Drain should return nothing")
	}

	// The tick lands as an EffectDoneMsg carrying the first id.
	a.Complete(1)
	if !fired {
		t.Fatal("continuation did not fire on Complete")
	}
	if a.Busy() || a.Active(engine.EffectShake) {
		t.Fatal("animator still busy after completion")
	}
}

func TestAnimatorZeroDurationCompletesInline(t *testing.T) {
	a := NewAnimator(config.Timing{})

	fired := false
	a.Play(engine.EffectResolve, func() { fired = true })
	if !fired {
		t.Fatal("zero-duration effect should complete immediately")
	}
	if a.Busy() {
		t.Fatal("nothing should be queued for a zero-duration effect")
	}
}

func TestAnimatorCompleteUnknownID(t *testing.T) {
	a := NewAnimator(config.Default().Timing)
	a.Complete(99)
}
