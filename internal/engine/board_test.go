package engine

import "testing"

func TestBoardRevealAndPlace(t *testing.T) {
	b := NewBoard()
	b.Begin("NOBEL")

	if b.Len() != 5 || b.Filled() != 0 || b.AllFilled() {
		t.Fatalf("fresh board: len=%d filled=%d", b.Len(), b.Filled())
	}

	letter, ok := b.Reveal(1)
	if !ok || letter != 'O' {
		t.Fatalf("Reveal(1) = %q, %v", letter, ok)
	}
	if _, ok := b.Reveal(1); ok {
		t.Fatal("re-revealing a slot succeeded")
	}
	if b.StateAt(1) != SlotRevealed {
		t.Fatal("revealed slot has wrong state")
	}

	b.Place()
	if !b.AllFilled() {
		t.Fatal("board not full after Place")
	}
	if b.StateAt(1) != SlotRevealed {
		t.Fatal("Place overwrote a revealed slot")
	}
	if b.StateAt(0) != SlotPlaced {
		t.Fatal("Place left an empty slot")
	}
}

func TestBoardUnfilled(t *testing.T) {
	b := NewBoard()
	b.Begin("ABC")
	b.Reveal(1)

	got := b.Unfilled()
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("Unfilled = %v, want [0 2]", got)
	}
}

func TestBoardRevealOutOfRange(t *testing.T) {
	b := NewBoard()
	b.Begin("ABC")
	if _, ok := b.Reveal(-1); ok {
		t.Fatal("Reveal(-1) succeeded")
	}
	if _, ok := b.Reveal(3); ok {
		t.Fatal("Reveal past end succeeded")
	}
}

func TestEmptyBoardNeverFilled(t *testing.T) {
	b := NewBoard()
	b.Begin("")
	if b.AllFilled() {
		t.Fatal("zero-length board reported filled")
	}
}
