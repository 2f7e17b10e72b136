package engine

import (
	"testing"

	"github.com/ssoylu/wordwheel/internal/config"
)

func testCurriculum() config.Curriculum {
	return config.Curriculum{
		QuestionsPerLevel: 15,
		LevelsPerChapter:  10,
		TotalQuestions:    1500,
	}
}

func TestCoordinatesCycle(t *testing.T) {
	prevChapter := 0
	for counter := 0; counter < 450; counter++ {
		c := CoordinatesFor(counter, 15, 10)
		if c.Question < 1 || c.Question > 15 {
			t.Fatalf("counter %d: question %d out of range 1..15", counter, c.Question)
		}
		if c.Level < 1 || c.Level > 10 {
			t.Fatalf("counter %d: level %d out of range 1..10", counter, c.Level)
		}
		if want := counter / 150; c.Chapter != want {
			t.Fatalf("counter %d: chapter = %d, want %d", counter, c.Chapter, want)
		}
		if c.Chapter < prevChapter {
			t.Fatalf("counter %d: chapter decreased", counter)
		}
		prevChapter = c.Chapter
	}
}

func TestCoordinatesBoundaries(t *testing.T) {
	cases := []struct {
		counter int
		want    Coordinates
	}{
		{0, Coordinates{Chapter: 0, Level: 1, Question: 1}},
		{14, Coordinates{Chapter: 0, Level: 1, Question: 15}},
		{15, Coordinates{Chapter: 0, Level: 2, Question: 1}},
		{149, Coordinates{Chapter: 0, Level: 10, Question: 15}},
		{150, Coordinates{Chapter: 1, Level: 1, Question: 1}},
		{1499, Coordinates{Chapter: 9, Level: 10, Question: 15}},
	}
	for _, tc := range cases {
		if got := CoordinatesFor(tc.counter, 15, 10); got != tc.want {
			t.Errorf("CoordinatesFor(%d) = %+v, want %+v", tc.counter, got, tc.want)
		}
	}
}

func TestContentIndexCycles(t *testing.T) {
	p := NewProgression(NewMemStore(), testCurriculum(), nil)
	for counter := 0; counter < 100; counter++ {
		p.JumpTo(counter)
		idx := p.ContentIndex(30)
		if idx < 0 || idx >= 30 {
			t.Fatalf("counter %d: content index %d out of range [0,30)", counter, idx)
		}
		if idx != counter%30 {
			t.Fatalf("counter %d: content index = %d, want %d", counter, idx, counter%30)
		}
	}
}

func TestContentIndexEmptyPack(t *testing.T) {
	p := NewProgression(NewMemStore(), testCurriculum(), nil)
	if idx := p.ContentIndex(0); idx != -1 {
		t.Fatalf("ContentIndex(0) = %d, want -1", idx)
	}
}

func TestAdvancePersistsAndSignalsEnd(t *testing.T) {
	store := NewMemStore()
	p := NewProgression(store, testCurriculum(), nil)

	if !p.Advance() {
		t.Fatal("Advance at counter 0 should not signal game complete")
	}
	if got := store.GetInt(KeyQuestionIndex, -1); got != 1 {
		t.Fatalf("persisted counter = %d, want 1", got)
	}

	p.JumpTo(1499)
	if p.Advance() {
		t.Fatal("Advance onto the total question count should signal game complete")
	}
	if !p.Complete() {
		t.Fatal("Complete should report true at the end threshold")
	}
}

func TestCounterRestoredFromStore(t *testing.T) {
	store := NewMemStore()
	store.SetInt(KeyQuestionIndex, 42)
	p := NewProgression(store, testCurriculum(), nil)
	if p.Counter() != 42 {
		t.Fatalf("restored counter = %d, want 42", p.Counter())
	}
}

func TestChapterNameClamped(t *testing.T) {
	p := NewProgression(NewMemStore(), testCurriculum(), []string{"FIRST", "SECOND"})

	if got := p.ChapterNameAt(0); got != "FIRST" {
		t.Errorf("ChapterNameAt(0) = %q", got)
	}
	if got := p.ChapterNameAt(7); got != "SECOND" {
		t.Errorf("ChapterNameAt(7) = %q, want clamp to last name", got)
	}
	if got := p.ChapterNameAt(-1); got != "FIRST" {
		t.Errorf("ChapterNameAt(-1) = %q, want clamp to first name", got)
	}

	empty := NewProgression(NewMemStore(), testCurriculum(), nil)
	if got := empty.ChapterNameAt(3); got != "" {
		t.Errorf("ChapterNameAt with no names = %q, want empty", got)
	}
}

func TestJumpToClampsNegative(t *testing.T) {
	p := NewProgression(NewMemStore(), testCurriculum(), nil)
	p.JumpTo(-5)
	if p.Counter() != 0 {
		t.Fatalf("counter after negative jump = %d, want 0", p.Counter())
	}
}
