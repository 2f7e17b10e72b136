package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ssoylu/wordwheel/internal/content"
	"github.com/ssoylu/wordwheel/internal/engine"
	"github.com/ssoylu/wordwheel/internal/storage"
)

// PopupKind identifies the modal currently on screen.
type PopupKind int

const (
	PopupNone PopupKind = iota
	PopupFact
	PopupOffer
	PopupTierUnlocked
	PopupLevelTransition
	PopupGameComplete
)

// Popup is one modal: its content and the continuation that resumes the
// game flow when the player dismisses it.
type Popup struct {
	Kind   PopupKind
	Title  string
	Body   string
	resume func()
}

// Presenter implements engine.Presenter by queueing modals for the model to
// display. The engine suspends between questions until the player dismisses
// each popup; dismissal fires the stored continuation.
type Presenter struct {
	store   *storage.Store
	profile string
	logger  *log.Logger
	queue   []Popup
}

// NewPresenter creates a presenter. store may be nil; level results are then
// not recorded.
func NewPresenter(store *storage.Store, profile string, logger *log.Logger) *Presenter {
	if logger == nil {
		logger = log.Default()
	}
	return &Presenter{store: store, profile: profile, logger: logger}
}

// Current returns the popup on screen, or nil.
func (p *Presenter) Current() *Popup {
	if len(p.queue) == 0 {
		return nil
	}
	return &p.queue[0]
}

// Dismiss closes the current popup and resumes the suspended game flow.
func (p *Presenter) Dismiss() {
	if len(p.queue) == 0 {
		return
	}
	popup := p.queue[0]
	p.queue = p.queue[1:]
	if popup.resume != nil {
		popup.resume()
	}
}

func (p *Presenter) push(popup Popup) {
	p.queue = append(p.queue, popup)
}

// ShowFact displays a historical fact between questions.
func (p *Presenter) ShowFact(fact content.Fact, resume func()) {
	p.push(Popup{
		Kind:   PopupFact,
		Title:  "DID YOU KNOW?",
		Body:   fact.Text,
		resume: resume,
	})
}

// ShowOffer displays the promotional offer slot.
func (p *Presenter) ShowOffer(resume func()) {
	p.push(Popup{
		Kind:   PopupOffer,
		Title:  "SPECIAL OFFER",
		Body:   "Spin the wheel (ctrl+w) for bonus gold!",
		resume: resume,
	})
}

// ShowTierUnlocked announces a newly available hint tier.
func (p *Presenter) ShowTierUnlocked(tier engine.HintTier, resume func()) {
	p.push(Popup{
		Kind:   PopupTierUnlocked,
		Title:  "HINT UNLOCKED",
		Body:   fmt.Sprintf("The %s hint is now available.", tier),
		resume: resume,
	})
}

// ShowLevelTransition displays the end-of-level summary and records the
// level result.
func (p *Presenter) ShowLevelTransition(chapter string, level, levelScore, totalScore int, resume func()) {
	if p.store != nil {
		if _, err := p.store.RecordLevelResult(p.profile, chapter, level, levelScore); err != nil {
			p.logger.Warn("could not record level result", "err", err)
		}
	}
	p.push(Popup{
		Kind:  PopupLevelTransition,
		Title: fmt.Sprintf("LEVEL %d COMPLETE", level),
		Body: fmt.Sprintf("%s\nLevel score: %d\nTotal score: %d",
			chapter, levelScore, totalScore),
		resume: resume,
	})
}

// ShowGameComplete displays the end-of-game screen. There is nothing to
// resume; the curriculum is finished.
func (p *Presenter) ShowGameComplete(totalScore, highScore int) {
	p.push(Popup{
		Kind:  PopupGameComplete,
		Title: "CURRICULUM COMPLETE",
		Body: fmt.Sprintf("Final score: %d\nBest score: %d\nPress ctrl+r to start over.",
			totalScore, highScore),
	})
}

var _ engine.Presenter = (*Presenter)(nil)
var _ engine.Animator = (*Animator)(nil)
