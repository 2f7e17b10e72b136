package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ssoylu/wordwheel/internal/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStateRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.GetState("default", "question_index"); err != nil || ok {
		t.Fatalf("GetState on empty store = ok=%v err=%v", ok, err)
	}

	if err := store.SetState("default", "question_index", 42); err != nil {
		t.Fatalf("SetState() failed: %v", err)
	}
	if err := store.SetState("default", "question_index", 43); err != nil {
		t.Fatalf("SetState() upsert failed: %v", err)
	}

	value, ok, err := store.GetState("default", "question_index")
	if err != nil {
		t.Fatalf("GetState() failed: %v", err)
	}
	if !ok || value != 43 {
		t.Errorf("GetState = %d ok=%v, want 43 true", value, ok)
	}
}

func TestStateProfilesIsolated(t *testing.T) {
	store := openTestStore(t)

	store.SetState("alice", "gold", 500)
	store.SetState("bob", "gold", 20)

	value, _, err := store.GetState("alice", "gold")
	if err != nil {
		t.Fatalf("GetState() failed: %v", err)
	}
	if value != 500 {
		t.Errorf("alice gold = %d, want 500", value)
	}
}

func TestDeleteState(t *testing.T) {
	store := openTestStore(t)

	store.SetState("default", "just_reset", 1)
	if err := store.DeleteState("default", "just_reset"); err != nil {
		t.Fatalf("DeleteState() failed: %v", err)
	}
	if _, ok, _ := store.GetState("default", "just_reset"); ok {
		t.Error("key still present after delete")
	}
}

func TestLevelResults(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{300, 450, 150} {
		if _, err := store.RecordLevelResult("default", "APPRENTICE", i+1, score); err != nil {
			t.Fatalf("RecordLevelResult() failed: %v", err)
		}
	}
	// Different profile
	if _, err := store.RecordLevelResult("other", "EXPLORER", 11, 900); err != nil {
		t.Fatalf("RecordLevelResult() failed: %v", err)
	}

	recent, err := store.RecentResults("default", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(recent))
	}
	// Newest first
	if recent[0].Level != 3 || recent[0].Score != 150 {
		t.Errorf("Newest result = level %d score %d", recent[0].Level, recent[0].Score)
	}

	top, err := store.TopResults("default", 2)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 450 || top[1].Score != 300 {
		t.Errorf("Top results not in expected order: %v", top)
	}
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	store.RecordLevelResult("default", "APPRENTICE", 1, 100)
	store.RecordLevelResult("other", "APPRENTICE", 1, 200)

	if err := store.ClearResults("default"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	mine, _ := store.RecentResults("default", 10)
	if len(mine) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(mine))
	}
	theirs, _ := store.RecentResults("other", 10)
	if len(theirs) != 1 {
		t.Error("Other profiles should not be affected by a clear")
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	// Empty profile
	stats, err := store.Stats("default")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Levels != 0 || stats.BestLevel != 0 {
		t.Errorf("Empty stats = %+v", stats)
	}

	store.RecordLevelResult("default", "APPRENTICE", 1, 100)
	store.RecordLevelResult("default", "APPRENTICE", 2, 300)

	stats, err = store.Stats("default")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Levels != 2 || stats.BestLevel != 300 || stats.TotalScore != 400 {
		t.Errorf("Stats = %+v", stats)
	}
}

func TestKVImplementsEngineStore(t *testing.T) {
	store := openTestStore(t)
	kv := NewKV(store, "default", nil)

	if got := kv.GetInt(engine.KeyGold, 150); got != 150 {
		t.Errorf("GetInt fallback = %d, want 150", got)
	}

	kv.SetInt(engine.KeyGold, 75)
	if got := kv.GetInt(engine.KeyGold, 150); got != 75 {
		t.Errorf("GetInt after set = %d, want 75", got)
	}
	if !kv.Has(engine.KeyGold) {
		t.Error("Has = false for written key")
	}

	kv.Delete(engine.KeyGold)
	if kv.Has(engine.KeyGold) {
		t.Error("Has = true after delete")
	}
}
