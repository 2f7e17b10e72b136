package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPackLoads(t *testing.T) {
	pack := DefaultPack()
	if pack.Len() == 0 {
		t.Fatal("embedded default pack is empty")
	}
	for i := 0; i < pack.Len(); i++ {
		q := pack.At(i)
		if q.Answer == "" {
			t.Errorf("question %d has no answer", q.ID)
		}
		if q.Canonical() != q.Answer {
			// Embedded answers are stored upper-cased already.
			t.Errorf("question %d answer %q is not canonical", q.ID, q.Answer)
		}
	}
}

func TestDefaultFactsLoad(t *testing.T) {
	facts := DefaultFacts()
	if len(facts) == 0 {
		t.Fatal("embedded facts are empty")
	}
	for _, f := range facts {
		if f.Text == "" {
			t.Errorf("fact %d has no text", f.ID)
		}
	}
}

func TestChaptersCount(t *testing.T) {
	if got := len(Chapters()); got != 10 {
		t.Fatalf("chapter count = %d, want 10", got)
	}
}

func TestPackDegradesOutOfRange(t *testing.T) {
	var nilPack *Pack
	if nilPack.Len() != 0 {
		t.Error("nil pack Len != 0")
	}
	if q := nilPack.At(0); q.Answer != "" {
		t.Error("nil pack At returned a question")
	}

	pack := &Pack{Questions: []Question{{ID: 1, Answer: "KALE"}}}
	if q := pack.At(5); q.Answer != "" {
		t.Error("out-of-range At returned a question")
	}
	if q := pack.At(-1); q.Answer != "" {
		t.Error("negative At returned a question")
	}
}

func TestCanonicalUpperCases(t *testing.T) {
	q := Question{Answer: "kale"}
	if q.Canonical() != "KALE" {
		t.Fatalf("Canonical = %q, want KALE", q.Canonical())
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: mini
questions:
  - id: 1
    question: "prompt one"
    answer: "ONE"
`)
	pack, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if pack.Name != "mini" || pack.Len() != 1 || pack.At(0).Answer != "ONE" {
		t.Fatalf("parsed pack = %+v", pack)
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"name":"mini","questions":[{"id":1,"question":"p","answer":"TWO"}]}`)
	pack, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if pack.Len() != 1 || pack.At(0).Answer != "TWO" {
		t.Fatalf("parsed pack = %+v", pack)
	}
}

func TestLoadDirMergesSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"), `
questions:
  - id: 2
    question: "second"
    answer: "BETA"
`)
	writeFile(t, filepath.Join(dir, "a.yaml"), `
questions:
  - id: 1
    question: "first"
    answer: "ALPHA"
`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	pack, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if pack.Len() != 2 {
		t.Fatalf("merged pack has %d questions, want 2", pack.Len())
	}
	// Files merge in name order.
	if pack.At(0).Answer != "ALPHA" || pack.At(1).Answer != "BETA" {
		t.Fatalf("merge order wrong: %q, %q", pack.At(0).Answer, pack.At(1).Answer)
	}
}

func TestLoadDirSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), "{{not yaml")
	writeFile(t, filepath.Join(dir, "good.yaml"), `
questions:
  - id: 1
    question: "q"
    answer: "OK"
`)

	pack, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if pack.Len() != 1 || pack.At(0).Answer != "OK" {
		t.Fatalf("pack = %+v", pack)
	}
}

func TestLoadDirEmptyErrors(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Fatal("LoadDir over an empty directory should error")
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
}
