// Package engine implements the word-connect game core: the letter-selection
// state machine, the curriculum progression index, time-tiered scoring, the
// gold-gated hint economy and the weighted/seeded selectors behind the reward
// wheel and per-level side events. Everything here runs on one logical thread
// of control; animation and popup collaborators resume suspended flows through
// continuations.
package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ssoylu/wordwheel/internal/config"
	"github.com/ssoylu/wordwheel/internal/content"
)

// ErrHintLocked is returned when a hint tier has not been unlocked yet.
var ErrHintLocked = errors.New("engine: hint tier not unlocked")

// ErrHintBusy is returned while a previous hint is still resolving.
var ErrHintBusy = errors.New("engine: hint already in progress")

// Options configures a Session. Store and Pack are required; everything else
// has a working default.
type Options struct {
	Store     Store
	Pack      *content.Pack
	Facts     []content.Fact
	Config    config.Game
	Animator  Animator
	Presenter Presenter
	Bus       *Bus
	Logger    *log.Logger
	Clock     func() time.Time
	Rand      *rand.Rand
}

// Session wires the game components together and owns the per-question flow:
// load question, accept input, resolve, advance, fire side events, repeat.
type Session struct {
	cfg       config.Game
	store     Store
	pack      *content.Pack
	bus       *Bus
	animator  Animator
	presenter Presenter
	logger    *log.Logger
	rng       *rand.Rand

	progression *Progression
	scoring     *Scoring
	ledger      *Ledger
	hints       *Hints
	wheel       *Wheel
	facts       *FactFeed
	assembly    *Assembly
	board       *Board

	question content.Question
}

// NewSession constructs a session from persisted state. A fresh store yields
// a fresh game; an existing one resumes where the player left off.
func NewSession(opts Options) *Session {
	if opts.Store == nil {
		opts.Store = NewMemStore()
	}
	if opts.Pack == nil {
		opts.Pack = &content.Pack{}
	}
	if opts.Animator == nil {
		opts.Animator = NopAnimator{}
	}
	if opts.Presenter == nil {
		opts.Presenter = NopPresenter{}
	}
	if opts.Bus == nil {
		opts.Bus = NewBus()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Clock().UnixNano()))
	}

	s := &Session{
		cfg:       opts.Config,
		store:     opts.Store,
		pack:      opts.Pack,
		bus:       opts.Bus,
		animator:  opts.Animator,
		presenter: opts.Presenter,
		logger:    opts.Logger,
		rng:       opts.Rand,
	}
	s.progression = NewProgression(opts.Store, opts.Config.Curriculum, content.Chapters())
	s.scoring = NewScoring(opts.Store, opts.Config.Scoring, opts.Clock, opts.Bus)
	s.ledger = NewLedger(opts.Store, opts.Config.Gold, opts.Bus)
	s.hints = NewHints(opts.Store, opts.Config.Hints, opts.Rand)
	s.wheel = NewWheel(opts.Config.Wheel, opts.Rand)
	s.facts = NewFactFeed(opts.Store, opts.Facts)
	s.assembly = NewAssembly()
	s.board = NewBoard()
	return s
}

// Start loads the current question and begins accepting input.
func (s *Session) Start() {
	s.loadQuestion()
}

func (s *Session) loadQuestion() {
	if s.progression.Complete() {
		s.logger.Info("game complete", "score", s.scoring.Total(), "high", s.scoring.High())
		s.presenter.ShowGameComplete(s.scoring.Total(), s.scoring.High())
		return
	}

	coords := s.progression.Coordinates()
	if coords.Question == 1 {
		s.scoring.ResetLevelScore()
	}

	idx := s.progression.ContentIndex(s.pack.Len())
	if idx < 0 {
		s.logger.Warn("no questions loaded, question degrades to empty")
	}
	s.question = s.pack.At(idx)

	answer := s.question.Canonical()
	s.board.Begin(answer)
	s.assembly.Begin(answer, s.rng)
	s.hints.Unlock()
	s.scoring.StartTimer()

	s.bus.emitLevelInfo(s.progression.ChapterName(), coords.Level)
	s.bus.emitQuestionProgress(coords.Question, s.cfg.Curriculum.QuestionsPerLevel)
	s.logger.Debug("question loaded",
		"counter", s.progression.Counter(),
		"chapter", coords.Chapter,
		"level", coords.Level,
		"question", coords.Question,
	)
}

// TileDown starts a drag selection on a tile.
func (s *Session) TileDown(idx int) {
	s.assembly.TileDown(idx)
}

// TileEnter extends or backtracks the active drag selection.
func (s *Session) TileEnter(idx int) {
	s.assembly.TileEnter(idx)
}

// Release ends the drag gesture. Pass NoTile when the pointer lifted outside
// the tiles. A wrong or invalid word shakes and clears the trail; a match
// resolves the question.
func (s *Session) Release(idx int) ReleaseResult {
	result := s.assembly.Release(idx)
	switch result {
	case ReleaseRejected, ReleaseMismatched:
		s.animator.Play(EffectShake, func() {})
	case ReleaseMatched:
		s.resolveSolved()
	}
	return result
}

// resolveSolved handles both a matching release and a full hint reveal: lock
// input, score the word, fill the board, then chain into the post-question
// sequence once the resolve effect finishes.
func (s *Session) resolveSolved() {
	s.assembly.SetInteractable(false)

	// Hinted slots already hold letters; only the remainder is placed. The
	// delta still pays for the full word, matching a manual solve.
	delta := s.scoring.ComputeDelta(s.board.Len())
	s.scoring.ApplyDelta(delta)
	s.board.Place()

	s.animator.Play(EffectResolve, func() {
		s.finishQuestion()
	})
}

// finishQuestion advances the counter and runs the post-question popup chain:
// newly unlocked hint tiers, the deterministic fact/offer events, the level
// transition, then the next question (or the end screen).
func (s *Session) finishQuestion() {
	coords := s.progression.Coordinates()
	level := s.progression.AbsoluteLevel()
	levelScore := s.scoring.LevelScore()
	chapter := s.progression.ChapterName()

	s.progression.Advance()
	s.hints.Unlock()

	var steps []func(next func())

	for _, tier := range s.hints.BumpWatermark(s.progression.Counter()) {
		tier := tier
		steps = append(steps, func(next func()) {
			s.presenter.ShowTierUnlocked(tier, next)
		})
	}

	if FactDue(s.cfg.Events, level, coords.Question) {
		if fact, ok := s.facts.Next(); ok {
			steps = append(steps, func(next func()) {
				s.presenter.ShowFact(fact, next)
			})
		}
	}
	if OfferDue(s.cfg.Events, level, coords.Question) {
		steps = append(steps, func(next func()) {
			s.presenter.ShowOffer(next)
		})
	}

	if coords.Question == s.cfg.Curriculum.QuestionsPerLevel {
		total := s.scoring.Total()
		steps = append(steps, func(next func()) {
			s.presenter.ShowLevelTransition(chapter, level, levelScore, total, next)
		})
	}

	runSteps(steps, s.loadQuestion)
}

// runSteps chains continuation-passing steps and ends with final. Each step
// must call next exactly once.
func runSteps(steps []func(next func()), final func()) {
	var run func(i int)
	run = func(i int) {
		if i >= len(steps) {
			final()
			return
		}
		steps[i](func() { run(i + 1) })
	}
	run(0)
}

// RevealHint buys and applies one hint tier. Locked tiers, overlapping
// requests and insufficient gold all abort with no charge and no reveal. A
// reveal that completes the board resolves the question exactly like a
// correct manual answer, after the completion delay.
func (s *Session) RevealHint(tier HintTier) error {
	if !s.hints.Unlocked(tier) {
		return ErrHintLocked
	}

	unfilled := s.board.Unfilled()
	if len(unfilled) == 0 {
		return nil
	}
	if !s.hints.TryLock() {
		return ErrHintBusy
	}

	cost := s.hints.Cost(tier)
	if err := s.ledger.TrySpend(cost); err != nil {
		s.hints.Unlock()
		return err
	}

	count := s.hints.CountFor(tier, s.board.Len(), len(unfilled))
	for _, pi := range s.rng.Perm(len(unfilled))[:count] {
		idx := unfilled[pi]
		if letter, ok := s.board.Reveal(idx); ok {
			s.bus.emitHintRevealed(idx, letter)
			s.animator.Play(EffectReveal, func() {})
		}
	}
	s.logger.Debug("hint revealed", "tier", tier.String(), "letters", count, "cost", cost)

	if s.board.AllFilled() {
		s.assembly.SetInteractable(false)
		s.animator.Play(EffectCompletionDelay, func() {
			s.resolveSolved()
		})
		return nil
	}

	s.animator.Play(EffectHintCooldown, func() {
		s.hints.Unlock()
	})
	return nil
}

// SpinWheel starts a reward wheel spin. The prize is drawn up front; gold is
// credited when the spin effect lands.
func (s *Session) SpinWheel() (prize int, err error) {
	_, prize, err = s.wheel.Spin()
	if err != nil {
		return 0, err
	}
	s.animator.Play(EffectWheelSpin, func() {
		s.ledger.Add(prize)
		s.bus.emitWheelLanded(prize)
		s.wheel.Settle()
		s.logger.Info("wheel landed", "prize", prize)
	})
	return prize, nil
}

// ResetAll restarts the game: counter, scores and gold return to their
// defaults in one sequenced transaction. The high score survives. The
// just-reset flag suppresses the next debug jump.
func (s *Session) ResetAll() {
	s.progression.Reset()
	s.scoring.Reset()
	s.ledger.Reset()
	s.hints.Reset()
	s.facts.Reset()
	s.store.SetInt(KeyJustReset, 1)
	s.logger.Info("game reset")
	s.loadQuestion()
}

// ConsumeJustReset reads and clears the transient just-reset flag.
func (s *Session) ConsumeJustReset() bool {
	if !s.store.Has(KeyJustReset) {
		return false
	}
	s.store.Delete(KeyJustReset)
	return true
}

// JumpTo moves the counter directly to a question index, bypassing Advance.
// Debug entry point; suppressed once immediately after a reset. Reports
// whether the jump happened.
func (s *Session) JumpTo(counter int) bool {
	if s.ConsumeJustReset() {
		s.logger.Debug("jump suppressed after reset", "counter", counter)
		return false
	}
	s.progression.JumpTo(counter)
	s.loadQuestion()
	return true
}

// Question returns the active question.
func (s *Session) Question() content.Question { return s.question }

// Assembly returns the letter-selection state machine for the presentation
// layer to read tiles and the trail from.
func (s *Session) Assembly() *Assembly { return s.assembly }

// Board returns the answer board.
func (s *Session) Board() *Board { return s.board }

// Progression returns the curriculum index.
func (s *Session) Progression() *Progression { return s.progression }

// Scoring returns the score tallies.
func (s *Session) Scoring() *Scoring { return s.scoring }

// Gold returns the gold ledger.
func (s *Session) Gold() *Ledger { return s.ledger }

// HintState returns the hint availability tracker.
func (s *Session) HintState() *Hints { return s.hints }

// RewardWheel returns the reward wheel.
func (s *Session) RewardWheel() *Wheel { return s.wheel }

// Bus returns the notification bus.
func (s *Session) Bus() *Bus { return s.bus }

// Curriculum returns the configured curriculum layout.
func (s *Session) Curriculum() config.Curriculum { return s.cfg.Curriculum }

// Complete reports whether the player has finished the whole curriculum.
func (s *Session) Complete() bool { return s.progression.Complete() }
