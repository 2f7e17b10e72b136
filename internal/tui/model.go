package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ssoylu/wordwheel/internal/config"
	"github.com/ssoylu/wordwheel/internal/content"
	"github.com/ssoylu/wordwheel/internal/engine"
	"github.com/ssoylu/wordwheel/internal/storage"
)

// SessionOptions configures a game model.
type SessionOptions struct {
	// DB is the SQLite store; nil runs a throwaway in-memory game.
	DB      *storage.Store
	Profile string

	Pack   *content.Pack
	Facts  []content.Fact
	Config config.Game
	Logger *log.Logger

	// Seed fixes the RNG for reproducible tile deals; 0 seeds from the clock.
	Seed int64
}

// uiState is shared across model copies so bus callbacks can reach the view.
type uiState struct {
	status   string
	lastWord string
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	session   *engine.Session
	animator  *Animator
	presenter *Presenter
	keys      KeyMap
	help      help.Model
	ui        *uiState

	width    int
	height   int
	quitting bool
}

// NewModel wires a game session to the terminal UI.
func NewModel(opts SessionOptions) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Profile == "" {
		opts.Profile = "default"
	}

	var store engine.Store
	if opts.DB != nil {
		store = storage.NewKV(opts.DB, opts.Profile, opts.Logger)
	} else {
		store = engine.NewMemStore()
	}

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	animator := NewAnimator(opts.Config.Timing)
	presenter := NewPresenter(opts.DB, opts.Profile, opts.Logger)
	bus := engine.NewBus()
	ui := &uiState{}

	bus.OnWheelLanded(func(prize int) {
		ui.status = fmt.Sprintf("The wheel lands on %d gold!", prize)
	})
	bus.OnHintRevealed(func(_ int, letter rune) {
		ui.status = fmt.Sprintf("Revealed %c", letter)
	})

	session := engine.NewSession(engine.Options{
		Store:     store,
		Pack:      opts.Pack,
		Facts:     opts.Facts,
		Config:    opts.Config,
		Animator:  animator,
		Presenter: presenter,
		Bus:       bus,
		Logger:    opts.Logger,
		Rand:      rng,
	})

	return Model{
		session:   session,
		animator:  animator,
		presenter: presenter,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		ui:        ui,
	}
}

// Init starts the game session.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return m.animator.Drain()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case EffectDoneMsg:
		m.animator.Complete(msg.ID)
		return m, m.animator.Drain()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.presenter.queue = nil
		m.session.ResetAll()
		m.ui.status = "Game reset"
		return m, m.animator.Drain()
	}

	// A popup owns the keyboard until dismissed.
	if popup := m.presenter.Current(); popup != nil {
		if key.Matches(msg, m.keys.Release) && popup.Kind != PopupGameComplete {
			m.presenter.Dismiss()
			return m, m.animator.Drain()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Release):
		m.ui.lastWord = m.session.Assembly().Word()
		switch m.session.Release(engine.NoTile) {
		case engine.ReleaseRejected, engine.ReleaseMismatched:
			m.ui.status = "Not quite, try again"
		case engine.ReleaseMatched:
			m.ui.status = ""
		}
		return m, m.animator.Drain()

	case key.Matches(msg, m.keys.Clear):
		m.ui.lastWord = m.session.Assembly().Word()
		m.session.Release(engine.NoTile)
		return m, m.animator.Drain()

	case key.Matches(msg, m.keys.Backtrack):
		sel := m.session.Assembly().Selection()
		if len(sel) >= 2 {
			m.session.TileEnter(sel[len(sel)-2])
		}
		return m, nil

	case key.Matches(msg, m.keys.HintSingle):
		return m.requestHint(engine.TierSingle)
	case key.Matches(msg, m.keys.HintMulti):
		return m.requestHint(engine.TierMulti)
	case key.Matches(msg, m.keys.HintWord):
		return m.requestHint(engine.TierWord)

	case key.Matches(msg, m.keys.Wheel):
		if _, err := m.session.SpinWheel(); err != nil {
			m.ui.status = "The wheel is already spinning"
			return m, nil
		}
		m.ui.status = "Spinning..."
		return m, m.animator.Drain()
	}

	return m.handleLetter(msg)
}

func (m Model) requestHint(tier engine.HintTier) (tea.Model, tea.Cmd) {
	switch err := m.session.RevealHint(tier); err {
	case nil:
	case engine.ErrHintLocked:
		m.ui.status = fmt.Sprintf("The %s hint is still locked", tier)
	case engine.ErrInsufficientGold:
		m.ui.status = "Not enough gold"
	case engine.ErrHintBusy:
		// Cooldown still running; ignore quietly.
	default:
		m.ui.status = err.Error()
	}
	return m, m.animator.Drain()
}

// handleLetter routes letter keys to the selection trail: the first press
// starts the drag, later presses extend it. Pressing the letter of the
// second-to-last selected tile walks the trail back, matching the pointer
// gesture.
func (m Model) handleLetter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if len(s) != 1 || !unicode.IsLetter(rune(s[0])) {
		return m, nil
	}
	letter := unicode.ToUpper(rune(s[0]))

	a := m.session.Assembly()
	sel := a.Selection()

	if len(sel) >= 2 {
		prev := sel[len(sel)-2]
		if a.Tiles()[prev] == letter {
			m.session.TileEnter(prev)
			return m, nil
		}
	}

	idx := firstUnselectedTile(a, letter)
	if idx < 0 {
		return m, nil
	}
	if !a.Active() {
		m.session.TileDown(idx)
	} else {
		m.session.TileEnter(idx)
	}
	return m, nil
}

// firstUnselectedTile finds a tile carrying letter that is not already on
// the trail.
func firstUnselectedTile(a *engine.Assembly, letter rune) int {
	selected := make(map[int]bool)
	for _, idx := range a.Selection() {
		selected[idx] = true
	}
	for i, tile := range a.Tiles() {
		if tile == letter && !selected[i] {
			return i
		}
	}
	return -1
}

// View renders the play screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if popup := m.presenter.Current(); popup != nil {
		w, h := m.width, m.height
		if w == 0 {
			w, h = 80, 24
		}
		return renderPopup(popup, w, h)
	}

	shaking := m.animator.Active(engine.EffectShake)
	trail := m.session.Assembly().Word()
	if shaking && trail == "" {
		trail = m.ui.lastWord
	}

	sections := []string{
		renderHeader(m.session),
		"",
		promptStyle.Render(m.session.Question().Prompt),
		"",
		renderBoard(m.session.Board()),
		"",
		renderWheel(m.session.Assembly()),
		"",
		renderTrail(trail, shaking),
		"",
		renderHints(m.session),
	}
	if m.ui.status != "" {
		sections = append(sections, "", m.ui.status)
	}
	sections = append(sections, "", m.help.View(m.keys))

	return strings.Join(sections, "\n")
}

// Run starts the Bubble Tea program for a local play session.
func Run(opts SessionOptions) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
