package engine

import (
	"github.com/ssoylu/wordwheel/internal/config"
)

// Coordinates locates a global question counter within the curriculum.
type Coordinates struct {
	Chapter  int // 0-based chapter index
	Level    int // 1-based level within the chapter
	Question int // 1-based question within the level
}

// CoordinatesFor computes curriculum coordinates for a counter. Pure function;
// the progression index wraps it with the configured constants.
func CoordinatesFor(counter, questionsPerLevel, levelsPerChapter int) Coordinates {
	perChapter := questionsPerLevel * levelsPerChapter
	return Coordinates{
		Chapter:  counter / perChapter,
		Level:    (counter%perChapter)/questionsPerLevel + 1,
		Question: counter%questionsPerLevel + 1,
	}
}

// AbsoluteLevel returns the 1-based level counted across all chapters.
func AbsoluteLevel(counter, questionsPerLevel int) int {
	return counter/questionsPerLevel + 1
}

// Progression is the single source of truth for "where are we in the
// curriculum": it owns the global question counter and its persistence.
type Progression struct {
	store    Store
	cur      config.Curriculum
	chapters []string
	counter  int
}

// NewProgression restores the persisted counter, or starts at zero.
func NewProgression(store Store, cur config.Curriculum, chapters []string) *Progression {
	return &Progression{
		store:    store,
		cur:      cur,
		chapters: chapters,
		counter:  store.GetInt(KeyQuestionIndex, 0),
	}
}

// Counter returns the current global question counter (0-based).
func (p *Progression) Counter() int {
	return p.counter
}

// Coordinates returns the curriculum coordinates of the current counter.
func (p *Progression) Coordinates() Coordinates {
	return CoordinatesFor(p.counter, p.cur.QuestionsPerLevel, p.cur.LevelsPerChapter)
}

// ChapterName returns the display name for the current chapter, clamped to
// the last defined name when the computed index runs past the list.
func (p *Progression) ChapterName() string {
	return p.ChapterNameAt(p.Coordinates().Chapter)
}

// ChapterNameAt returns the display name for a chapter index, clamped.
func (p *Progression) ChapterNameAt(chapter int) string {
	if len(p.chapters) == 0 {
		return ""
	}
	if chapter >= len(p.chapters) {
		chapter = len(p.chapters) - 1
	}
	if chapter < 0 {
		chapter = 0
	}
	return p.chapters[chapter]
}

// ContentIndex maps the counter onto a question pack of packLen entries,
// cycling packs smaller than the curriculum. Returns -1 for an empty pack.
func (p *Progression) ContentIndex(packLen int) int {
	if packLen <= 0 {
		return -1
	}
	return p.counter % packLen
}

// AbsoluteLevel returns the current 1-based level across all chapters.
func (p *Progression) AbsoluteLevel() int {
	return AbsoluteLevel(p.counter, p.cur.QuestionsPerLevel)
}

// Advance increments the counter and persists it. It returns false once the
// configured total question count is reached: the game is complete and no
// next question should load.
func (p *Progression) Advance() bool {
	p.counter++
	p.store.SetInt(KeyQuestionIndex, p.counter)
	return p.counter < p.cur.TotalQuestions
}

// Complete reports whether the counter has reached the end of the game.
func (p *Progression) Complete() bool {
	return p.counter >= p.cur.TotalQuestions
}

// JumpTo sets the counter directly, bypassing Advance. Debug entry point.
func (p *Progression) JumpTo(counter int) {
	if counter < 0 {
		counter = 0
	}
	p.counter = counter
	p.store.SetInt(KeyQuestionIndex, p.counter)
}

// Reset returns the counter to zero and persists it. The multi-component
// reset transaction in Session.ResetAll drives this together with the
// scoring and gold resets.
func (p *Progression) Reset() {
	p.counter = 0
	p.store.SetInt(KeyQuestionIndex, 0)
}
