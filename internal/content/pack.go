// Package content provides question packs for the word-connect game, the
// chapter name list, and the historical-fact feed shown between questions.
// Packs load from YAML or JSON files; an embedded default pack keeps the game
// playable with no files on disk.
package content

import "strings"

// Question is one puzzle: a prompt and the single-word answer to assemble.
// Answers are compared case-insensitively; Canonical returns the upper-cased
// form the engine works with.
type Question struct {
	ID     int    `yaml:"id" json:"id"`
	Prompt string `yaml:"question" json:"question"`
	Answer string `yaml:"answer" json:"answer"`
}

// Canonical returns the upper-cased answer.
func (q Question) Canonical() string {
	return strings.ToUpper(q.Answer)
}

// Pack is an ordered set of questions. A pack may be smaller than the
// curriculum; the progression index cycles it.
type Pack struct {
	Name      string     `yaml:"name" json:"name"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// Len returns the number of questions in the pack.
func (p *Pack) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Questions)
}

// At returns the question at index i. Out-of-range lookups and empty packs
// degrade to an empty question rather than panicking; callers must tolerate
// "no current answer".
func (p *Pack) At(i int) Question {
	if p == nil || i < 0 || i >= len(p.Questions) {
		return Question{}
	}
	return p.Questions[i]
}

// Fact is a single historical note shown by the side-event popup.
type Fact struct {
	ID   int    `yaml:"id" json:"id"`
	Text string `yaml:"fact" json:"fact"`
}
