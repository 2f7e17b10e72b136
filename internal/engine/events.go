package engine

import "github.com/ssoylu/wordwheel/internal/content"

// Effect identifies a one-shot presentation effect the engine asks its
// animation collaborator to play.
type Effect int

const (
	// EffectShake plays after a failed release: shake and clear the trail.
	EffectShake Effect = iota

	// EffectResolve moves the selected letters from the trail into the board.
	EffectResolve

	// EffectReveal pops a hinted letter into its board slot.
	EffectReveal

	// EffectHintCooldown is the short lockout between hint requests.
	EffectHintCooldown

	// EffectCompletionDelay is the pause before a fully hint-revealed
	// question resolves as solved.
	EffectCompletionDelay

	// EffectWheelSpin is the reward wheel spinning down onto its prize.
	EffectWheelSpin
)

// Animator plays effects and reports completion. Implementations must invoke
// done exactly once, synchronously or later. The engine registers the
// callback and returns to the event loop; it never blocks on an effect, and
// a transition that has begun runs to completion before new input is
// accepted.
type Animator interface {
	Play(effect Effect, done func())
}

// NopAnimator completes every effect immediately. Used by tests and by CLI
// commands that drive the engine without a presentation layer.
type NopAnimator struct{}

// Play invokes done immediately.
func (NopAnimator) Play(_ Effect, done func()) { done() }

// Presenter owns the modal popups that interleave between questions. Each
// Show method must invoke resume exactly once when the player dismisses the
// popup; the engine suspends the question flow until then.
type Presenter interface {
	ShowFact(fact content.Fact, resume func())
	ShowOffer(resume func())
	ShowTierUnlocked(tier HintTier, resume func())
	ShowLevelTransition(chapter string, level, levelScore, totalScore int, resume func())
	ShowGameComplete(totalScore, highScore int)
}

// NopPresenter resumes every popup immediately and drops the end screen.
type NopPresenter struct{}

func (NopPresenter) ShowFact(_ content.Fact, resume func())                   { resume() }
func (NopPresenter) ShowOffer(resume func())                                  { resume() }
func (NopPresenter) ShowTierUnlocked(_ HintTier, resume func())               { resume() }
func (NopPresenter) ShowLevelTransition(_ string, _, _, _ int, resume func()) { resume() }
func (NopPresenter) ShowGameComplete(_, _ int)                                {}

// Bus is the typed publish/subscribe surface for passive UI notifications.
// Handlers run synchronously on the game's single logical thread, in
// subscription order. Fire-and-forget: no handler return values.
type Bus struct {
	balanceChanged []func(balance int)
	scoreChanged   []func(oldTotal, newTotal int)
	levelInfo      []func(chapter string, level int)
	questionMoved  []func(questionInLevel, perLevel int)
	hintRevealed   []func(index int, letter rune)
	wheelLanded    []func(prize int)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// OnBalanceChanged subscribes to gold balance updates.
func (b *Bus) OnBalanceChanged(fn func(balance int)) {
	b.balanceChanged = append(b.balanceChanged, fn)
}

// OnScoreChanged subscribes to total-score updates. The presentation layer
// animates the count-up between the two values.
func (b *Bus) OnScoreChanged(fn func(oldTotal, newTotal int)) {
	b.scoreChanged = append(b.scoreChanged, fn)
}

// OnLevelInfoChanged subscribes to chapter/level display updates.
func (b *Bus) OnLevelInfoChanged(fn func(chapter string, level int)) {
	b.levelInfo = append(b.levelInfo, fn)
}

// OnQuestionProgress subscribes to question-in-level progress updates.
func (b *Bus) OnQuestionProgress(fn func(questionInLevel, perLevel int)) {
	b.questionMoved = append(b.questionMoved, fn)
}

// OnHintRevealed subscribes to single-letter hint reveals.
func (b *Bus) OnHintRevealed(fn func(index int, letter rune)) {
	b.hintRevealed = append(b.hintRevealed, fn)
}

// OnWheelLanded subscribes to reward wheel outcomes.
func (b *Bus) OnWheelLanded(fn func(prize int)) {
	b.wheelLanded = append(b.wheelLanded, fn)
}

func (b *Bus) emitBalanceChanged(balance int) {
	if b == nil {
		return
	}
	for _, fn := range b.balanceChanged {
		fn(balance)
	}
}

func (b *Bus) emitScoreChanged(oldTotal, newTotal int) {
	if b == nil {
		return
	}
	for _, fn := range b.scoreChanged {
		fn(oldTotal, newTotal)
	}
}

func (b *Bus) emitLevelInfo(chapter string, level int) {
	if b == nil {
		return
	}
	for _, fn := range b.levelInfo {
		fn(chapter, level)
	}
}

func (b *Bus) emitQuestionProgress(questionInLevel, perLevel int) {
	if b == nil {
		return
	}
	for _, fn := range b.questionMoved {
		fn(questionInLevel, perLevel)
	}
}

func (b *Bus) emitHintRevealed(index int, letter rune) {
	if b == nil {
		return
	}
	for _, fn := range b.hintRevealed {
		fn(index, letter)
	}
}

func (b *Bus) emitWheelLanded(prize int) {
	if b == nil {
		return
	}
	for _, fn := range b.wheelLanded {
		fn(prize)
	}
}
