package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRunRequiresLevel(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{Won: true}); err == nil {
		t.Error("SaveRun() without a level id should fail")
	}
}

func TestStoreBestRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{LevelID: "keep", Player: "ann", Won: true, Deaths: 2, Ticks: 3000, Duration: 50},
		{LevelID: "keep", Player: "bob", Won: true, Deaths: 0, Ticks: 2400, Duration: 40},
		{LevelID: "keep", Player: "cid", Won: false, Deaths: 7, Ticks: 900, Duration: 15},
		{LevelID: "keep", Player: "dee", Won: true, Deaths: 1, Ticks: 2400, Duration: 40},
		{LevelID: "tower", Player: "ann", Won: true, Deaths: 0, Ticks: 100, Duration: 1.5},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns("keep", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("BestRuns() returned %d runs, expected 3 clears", len(best))
	}

	expected := []string{"bob", "dee", "ann"}
	for i, name := range expected {
		if best[i].Player != name {
			t.Errorf("BestRuns()[%d].Player = %q, expected %q", i, best[i].Player, name)
		}
	}
	if !best[0].Won || best[0].Ticks != 2400 || best[0].Duration != 40 {
		t.Errorf("BestRuns()[0] = %+v, expected bob's clear", best[0])
	}

	limited, err := store.BestRuns("keep", 1)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("BestRuns(limit 1) returned %d runs, expected 1", len(limited))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(RunRecord{LevelID: "keep", Ticks: i})
	}

	recent, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("RecentRuns() returned %d runs, expected 3", len(recent))
	}
	if recent[0].Ticks != 4 || recent[2].Ticks != 2 {
		t.Errorf("RecentRuns() = %+v, expected newest first", recent)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("keep")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestTime != 0 {
		t.Errorf("Stats() on an unplayed level = %+v, expected zeros", empty)
	}

	store.SaveRun(RunRecord{LevelID: "keep", Won: true, Deaths: 1, Ticks: 1800, Duration: 30})
	store.SaveRun(RunRecord{LevelID: "keep", Won: true, Deaths: 0, Ticks: 1500, Duration: 25})
	store.SaveRun(RunRecord{LevelID: "keep", Won: false, Deaths: 4, Ticks: 600, Duration: 10})

	stats, err := store.Stats("keep")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Clears != 2 || stats.Deaths != 5 {
		t.Errorf("Stats() = %+v, expected 3 runs, 2 clears, 5 deaths", stats)
	}
	if stats.BestTime != 25 {
		t.Errorf("BestTime = %v, expected 25", stats.BestTime)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 1 || all["keep"].Runs != 3 {
		t.Errorf("AllStats() = %v, expected only keep with 3 runs", all)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{LevelID: "keep", Won: true})
	store.SaveRun(RunRecord{LevelID: "tower", Won: true})

	if err := store.ClearRuns("keep"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	keep, _ := store.BestRuns("keep", 10)
	if len(keep) != 0 {
		t.Errorf("Expected 0 keep runs after clear, got %d", len(keep))
	}
	tower, _ := store.BestRuns("tower", 10)
	if len(tower) != 1 {
		t.Error("tower runs should not be affected by clearing keep")
	}
}
