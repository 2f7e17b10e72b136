package engine

import (
	"math/rand"
	"strings"
)

// NoTile is passed to Release when the pointer lifts outside every tile.
const NoTile = -1

// ReleaseResult classifies the outcome of a pointer release.
type ReleaseResult int

const (
	// ReleaseIgnored means no selection was in progress.
	ReleaseIgnored ReleaseResult = iota

	// ReleaseRejected means a selection was in progress but the release
	// position invalidated it before the word was even compared.
	ReleaseRejected

	// ReleaseMatched means the assembled word equals the target.
	ReleaseMatched

	// ReleaseMismatched means a valid release assembled the wrong word.
	ReleaseMismatched
)

// Assembly is the letter-selection state machine for a single question. The
// target's letters are dealt onto tiles in shuffled order; the player drags
// across tiles to assemble a word and releases to submit it.
type Assembly struct {
	target       string
	tiles        []rune
	selection    []int
	active       bool
	interactable bool
}

// NewAssembly returns an idle assembly with no question loaded.
func NewAssembly() *Assembly {
	return &Assembly{}
}

// Begin loads a new target word and deals its letters onto tiles in an order
// drawn from rng. An empty target leaves the assembly non-interactable so a
// malformed question cannot auto-resolve.
func (a *Assembly) Begin(target string, rng *rand.Rand) {
	a.target = strings.ToUpper(target)
	a.tiles = []rune(a.target)
	rng.Shuffle(len(a.tiles), func(i, j int) {
		a.tiles[i], a.tiles[j] = a.tiles[j], a.tiles[i]
	})
	a.selection = a.selection[:0]
	a.active = false
	a.interactable = a.target != ""
}

// Target returns the canonical (upper-cased) answer for the loaded question.
func (a *Assembly) Target() string { return a.target }

// Tiles returns the dealt letters in wheel order.
func (a *Assembly) Tiles() []rune { return a.tiles }

// Selection returns the indices of the currently selected tiles in
// selection order.
func (a *Assembly) Selection() []int { return a.selection }

// Word returns the letters of the current selection as a string.
func (a *Assembly) Word() string {
	var sb strings.Builder
	for _, idx := range a.selection {
		sb.WriteRune(a.tiles[idx])
	}
	return sb.String()
}

// Active reports whether a drag selection is in progress.
func (a *Assembly) Active() bool { return a.active }

// Interactable reports whether the assembly accepts pointer input.
func (a *Assembly) Interactable() bool { return a.interactable }

// SetInteractable toggles pointer input, used to lock the board while an
// effect or popup is running. Disabling mid-drag abandons the selection.
func (a *Assembly) SetInteractable(on bool) {
	a.interactable = on
	if !on {
		a.active = false
		a.selection = a.selection[:0]
	}
}

// TileDown starts a selection on the given tile. A press while a selection
// is already active, or on an out-of-range tile, is ignored.
func (a *Assembly) TileDown(idx int) {
	if !a.interactable || a.active || idx < 0 || idx >= len(a.tiles) {
		return
	}
	a.active = true
	a.selection = append(a.selection[:0], idx)
}

// TileEnter extends the active selection onto a tile. Entering the
// second-to-last selected tile backtracks, deselecting the newest letter.
// Entering any other already-selected tile does nothing.
func (a *Assembly) TileEnter(idx int) {
	if !a.active || idx < 0 || idx >= len(a.tiles) {
		return
	}
	for pos, sel := range a.selection {
		if sel != idx {
			continue
		}
		if pos == len(a.selection)-2 {
			a.selection = a.selection[:len(a.selection)-1]
		}
		return
	}
	a.selection = append(a.selection, idx)
}

// Release ends the drag and classifies it. Pass NoTile when the pointer
// lifted outside the tiles. A submission is only compared against the target
// when every letter was used and the release happened off the tiles or on
// the last tile selected; anything else rejects the attempt outright. The
// selection is cleared in every case.
func (a *Assembly) Release(idx int) ReleaseResult {
	if !a.active {
		return ReleaseIgnored
	}
	word := a.Word()
	last := a.selection[len(a.selection)-1]
	complete := len(a.selection) == len(a.tiles)
	a.active = false
	a.selection = a.selection[:0]

	if !complete || (idx != NoTile && idx != last) {
		return ReleaseRejected
	}
	if word == a.target {
		return ReleaseMatched
	}
	return ReleaseMismatched
}
