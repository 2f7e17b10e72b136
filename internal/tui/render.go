package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ssoylu/wordwheel/internal/engine"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	goldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	promptStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("7"))

	slotEmptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	slotRevealedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	slotPlacedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	tileStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	tileSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	trailStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	shakeStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	hintLockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hintUnlockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 3).
			Align(lipgloss.Center)
	popupTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// renderHeader draws the chapter/level/question line with the score and
// gold tallies.
func renderHeader(s *engine.Session) string {
	coords := s.Progression().Coordinates()
	left := headerStyle.Render(fmt.Sprintf("%s  LEVEL %d  %d/%d",
		s.Progression().ChapterName(), coords.Level, coords.Question,
		s.Curriculum().QuestionsPerLevel))
	right := fmt.Sprintf("%s  %s",
		scoreStyle.Render(fmt.Sprintf("SCORE %d", s.Scoring().Total())),
		goldStyle.Render(fmt.Sprintf("GOLD %d", s.Gold().Balance())))
	return left + "    " + right
}

// renderBoard draws the answer slots. Revealed and placed letters show;
// empty slots show an underscore.
func renderBoard(b *engine.Board) string {
	if b.Len() == 0 {
		return slotEmptyStyle.Render("(no question loaded)")
	}

	parts := make([]string, b.Len())
	for i := 0; i < b.Len(); i++ {
		switch b.StateAt(i) {
		case engine.SlotRevealed:
			parts[i] = slotRevealedStyle.Render(fmt.Sprintf("[%c]", b.LetterAt(i)))
		case engine.SlotPlaced:
			parts[i] = slotPlacedStyle.Render(fmt.Sprintf("[%c]", b.LetterAt(i)))
		default:
			parts[i] = slotEmptyStyle.Render("[_]")
		}
	}
	return strings.Join(parts, " ")
}

// renderWheel lays the tiles out on a ring of characters, the way the
// pointer-driven original arranges them radially. Selected tiles highlight.
func renderWheel(a *engine.Assembly) string {
	tiles := a.Tiles()
	n := len(tiles)
	if n == 0 {
		return ""
	}

	selected := make(map[int]bool, n)
	for _, idx := range a.Selection() {
		selected[idx] = true
	}

	// Ellipse sized to the tile count; terminal cells are about twice as
	// tall as wide, so the horizontal radius doubles.
	ry := (n + 5) / 2
	rx := ry * 2
	width := 2*rx + 1
	height := 2*ry + 1

	grid := make([][]rune, height)
	styled := make([][]bool, height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", width))
		styled[y] = make([]bool, width)
	}

	for i, letter := range tiles {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		x := rx + int(math.Round(float64(rx)*math.Cos(angle)))
		y := ry + int(math.Round(float64(ry)*math.Sin(angle)))
		grid[y][x] = letter
		styled[y][x] = selected[i]
	}

	var sb strings.Builder
	for y := range grid {
		for x, r := range grid[y] {
			if r == ' ' {
				sb.WriteRune(' ')
				continue
			}
			if styled[y][x] {
				sb.WriteString(tileSelectedStyle.Render(string(r)))
			} else {
				sb.WriteString(tileStyle.Render(string(r)))
			}
		}
		sb.WriteRune('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderTrail draws the letters assembled so far, red while shaking.
func renderTrail(word string, shaking bool) string {
	if word == "" {
		return " "
	}
	spaced := strings.Join(strings.Split(word, ""), " ")
	if shaking {
		return shakeStyle.Render(spaced)
	}
	return trailStyle.Render(spaced)
}

// renderHints draws the hint bar with costs, dimming locked tiers.
func renderHints(s *engine.Session) string {
	h := s.HintState()
	parts := make([]string, 0, 3)
	for i, tier := range []engine.HintTier{engine.TierSingle, engine.TierMulti, engine.TierWord} {
		label := fmt.Sprintf("[%d] %s (%d gold)", i+1, tier, h.Cost(tier))
		if h.Unlocked(tier) {
			parts = append(parts, hintUnlockedStyle.Render(label))
		} else {
			parts = append(parts, hintLockedStyle.Render(label+" locked"))
		}
	}
	return strings.Join(parts, "   ")
}

// renderPopup draws a modal centered in the given area.
func renderPopup(p *Popup, width, height int) string {
	body := popupTitleStyle.Render(p.Title) + "\n\n" + p.Body
	if p.Kind != PopupGameComplete {
		body += "\n\n" + slotEmptyStyle.Render("press enter")
	}
	box := popupStyle.Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
