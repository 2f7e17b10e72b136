package engine

// SlotState describes one answer slot on the board.
type SlotState int

const (
	// SlotEmpty shows a blank placeholder.
	SlotEmpty SlotState = iota

	// SlotRevealed holds a letter exposed by a hint.
	SlotRevealed

	// SlotPlaced holds a letter resolved from a correct submission.
	SlotPlaced
)

// Board tracks the answer slots for the current question. Slots fill either
// from hints (revealed) or from a matching release (placed); a revealed slot
// is never overwritten.
type Board struct {
	answer []rune
	states []SlotState
}

// NewBoard returns a board with no question loaded.
func NewBoard() *Board {
	return &Board{}
}

// Begin sizes the board for a new answer with every slot empty.
func (b *Board) Begin(answer string) {
	b.answer = []rune(answer)
	b.states = make([]SlotState, len(b.answer))
}

// Len returns the number of slots.
func (b *Board) Len() int { return len(b.answer) }

// LetterAt returns the answer letter for a slot regardless of its state.
func (b *Board) LetterAt(idx int) rune { return b.answer[idx] }

// StateAt returns the state of a slot.
func (b *Board) StateAt(idx int) SlotState { return b.states[idx] }

// Reveal marks a slot as hint-revealed and returns its letter. Revealing an
// already filled slot reports ok=false.
func (b *Board) Reveal(idx int) (letter rune, ok bool) {
	if idx < 0 || idx >= len(b.answer) || b.states[idx] != SlotEmpty {
		return 0, false
	}
	b.states[idx] = SlotRevealed
	return b.answer[idx], true
}

// Place fills every remaining slot from a correct submission. Revealed slots
// keep their state.
func (b *Board) Place() {
	for i, st := range b.states {
		if st == SlotEmpty {
			b.states[i] = SlotPlaced
		}
	}
}

// Unfilled returns the indices of slots still empty.
func (b *Board) Unfilled() []int {
	var out []int
	for i, st := range b.states {
		if st == SlotEmpty {
			out = append(out, i)
		}
	}
	return out
}

// Filled returns how many slots hold a letter.
func (b *Board) Filled() int {
	n := 0
	for _, st := range b.states {
		if st != SlotEmpty {
			n++
		}
	}
	return n
}

// AllFilled reports whether every slot holds a letter. A zero-length board
// never counts as filled.
func (b *Board) AllFilled() bool {
	return len(b.states) > 0 && b.Filled() == len(b.states)
}
