// Package config provides YAML-based configuration for the word-connect game:
// curriculum layout, scoring tiers, hint economy, gold defaults, reward wheel
// slices and side-event trigger parameters.
package config

// Game contains all tunable parameters for a play session.
type Game struct {
	Curriculum Curriculum `yaml:"curriculum"`
	Scoring    Scoring    `yaml:"scoring"`
	Hints      Hints      `yaml:"hints"`
	Gold       Gold       `yaml:"gold"`
	Wheel      Wheel      `yaml:"wheel"`
	Events     Events     `yaml:"events"`
	Timing     Timing     `yaml:"timing"`
}

// Curriculum defines the fixed chapter/level/question layout.
type Curriculum struct {
	QuestionsPerLevel int `yaml:"questions_per_level"`
	LevelsPerChapter  int `yaml:"levels_per_chapter"`
	TotalQuestions    int `yaml:"total_questions"` // end-of-game threshold
}

// QuestionsPerChapter returns the derived chapter span.
func (c Curriculum) QuestionsPerChapter() int {
	return c.QuestionsPerLevel * c.LevelsPerChapter
}

// Scoring defines the time-tiered score multipliers.
type Scoring struct {
	// Tiers are checked in order; the first tier whose UnderSeconds bound
	// exceeds the solve duration wins.
	Tiers []ScoreTier `yaml:"tiers"`

	// SlowMultiplier applies when no tier matches.
	SlowMultiplier int `yaml:"slow_multiplier"`

	// UntimedMultiplier applies when the timer was never started.
	UntimedMultiplier int `yaml:"untimed_multiplier"`
}

// ScoreTier maps a solve-time bound to a per-letter multiplier.
type ScoreTier struct {
	UnderSeconds float64 `yaml:"under_seconds"`
	Multiplier   int     `yaml:"multiplier"`
}

// Hints defines the three reveal tiers and their unlock points.
type Hints struct {
	Single HintTier `yaml:"single"`
	Multi  HintTier `yaml:"multi"`
	Word   HintTier `yaml:"word"`

	// MultiMaxWhenLong bounds the random multi-letter count (inclusive) for
	// answers longer than MultiLongAnswerLen letters.
	MultiMaxWhenLong   int `yaml:"multi_max_when_long"`
	MultiLongAnswerLen int `yaml:"multi_long_answer_len"`
}

// HintTier is a single hint button: its gold cost, how many letters it
// reveals (0 means "whole word") and the global question number after which
// it becomes available.
type HintTier struct {
	Cost        int `yaml:"cost"`
	Letters     int `yaml:"letters"`
	UnlockAfter int `yaml:"unlock_after"`
}

// Gold defines the currency defaults.
type Gold struct {
	StartingBalance int `yaml:"starting_balance"`

	// OnboardingBalance replaces StartingBalance on first run when
	// OnboardingBonus is set (the alternate onboarding path).
	OnboardingBalance int  `yaml:"onboarding_balance"`
	OnboardingBonus   bool `yaml:"onboarding_bonus"`
}

// Initial returns the first-run balance for the configured onboarding path.
func (g Gold) Initial() int {
	if g.OnboardingBonus {
		return g.OnboardingBalance
	}
	return g.StartingBalance
}

// Wheel defines the reward wheel slices.
type Wheel struct {
	Slices []WheelSlice `yaml:"slices"`
}

// WheelSlice is one wheel outcome: a gold prize and its selection weight.
type WheelSlice struct {
	Prize  int `yaml:"prize"`
	Weight int `yaml:"weight"`
}

// Events defines the deterministic per-level side-event triggers. Salts keep
// the fact and offer events from landing on the same question of a level.
type Events struct {
	FactSalt  int64 `yaml:"fact_salt"`
	OfferSalt int64 `yaml:"offer_salt"`

	// Trigger window within a level: [WindowLow, WindowHigh) question-in-level.
	WindowLow  int `yaml:"window_low"`
	WindowHigh int `yaml:"window_high"`

	// FactMinLevel is the first level facts may appear on (odd levels only).
	FactMinLevel int `yaml:"fact_min_level"`
}

// Timing defines presentation delays the engine hands to its animation
// collaborator. The engine never sleeps on these itself.
type Timing struct {
	CompletionDelaySeconds float64 `yaml:"completion_delay_seconds"`
	HintCooldownSeconds    float64 `yaml:"hint_cooldown_seconds"`
	ShakeSeconds           float64 `yaml:"shake_seconds"`
	ResolveSeconds         float64 `yaml:"resolve_seconds"`
	WheelSpinSeconds       float64 `yaml:"wheel_spin_seconds"`
}

// Default returns the built-in configuration, matching the embedded YAML.
func Default() Game {
	return Game{
		Curriculum: Curriculum{
			QuestionsPerLevel: 15,
			LevelsPerChapter:  10,
			TotalQuestions:    1500,
		},
		Scoring: Scoring{
			Tiers: []ScoreTier{
				{UnderSeconds: 10, Multiplier: 20},
				{UnderSeconds: 20, Multiplier: 15},
				{UnderSeconds: 30, Multiplier: 10},
			},
			SlowMultiplier:    5,
			UntimedMultiplier: 5,
		},
		Hints: Hints{
			Single:             HintTier{Cost: 25, Letters: 1, UnlockAfter: 3},
			Multi:              HintTier{Cost: 50, Letters: 2, UnlockAfter: 7},
			Word:               HintTier{Cost: 100, Letters: 0, UnlockAfter: 12},
			MultiMaxWhenLong:   3,
			MultiLongAnswerLen: 3,
		},
		Gold: Gold{
			StartingBalance:   150,
			OnboardingBalance: 300,
		},
		Wheel: Wheel{
			Slices: []WheelSlice{
				{Prize: 15, Weight: 100},
				{Prize: 25, Weight: 100},
				{Prize: 35, Weight: 100},
				{Prize: 50, Weight: 100},
				{Prize: 60, Weight: 100},
				{Prize: 75, Weight: 100},
				{Prize: 100, Weight: 100},
				{Prize: 250, Weight: 5},
			},
		},
		Events: Events{
			FactSalt:     12345,
			OfferSalt:    54321,
			WindowLow:    5,
			WindowHigh:   13,
			FactMinLevel: 3,
		},
		Timing: Timing{
			CompletionDelaySeconds: 1.0,
			HintCooldownSeconds:    0.5,
			ShakeSeconds:           0.5,
			ResolveSeconds:         0.8,
			WheelSpinSeconds:       4.0,
		},
	}
}
