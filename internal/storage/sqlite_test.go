package storage

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "nested", "scores.db"))
	if err != nil {
		t.Fatalf("Open should create parent directories: %v", err)
	}
	defer store.Close()

	// A freshly created database starts empty.
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore on empty database = %d, expected 0", high)
	}
}

func TestSaveAndTopScores(t *testing.T) {
	store := testStore(t)

	for _, score := range []int{120, 900, 450} {
		if _, err := store.SaveScore(score); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", score, err)
		}
	}

	entries, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("TopScores returned %d entries, expected 3", len(entries))
	}

	want := []int{900, 450, 120}
	for i, entry := range entries {
		if entry.Score != want[i] {
			t.Errorf("entry %d: score = %d, expected %d", i, entry.Score, want[i])
		}
		if entry.ID == 0 {
			t.Errorf("entry %d: missing ID", i)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := testStore(t)

	for score := 1; score <= 5; score++ {
		if _, err := store.SaveScore(score * 100); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	entries, err := store.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("TopScores(2) returned %d entries", len(entries))
	}
	if entries[0].Score != 500 || entries[1].Score != 400 {
		t.Errorf("TopScores(2) = [%d, %d], expected [500, 400]", entries[0].Score, entries[1].Score)
	}
}

func TestHighScore(t *testing.T) {
	store := testStore(t)

	scores := []int{300, 1250, 780}
	for _, score := range scores {
		if _, err := store.SaveScore(score); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 1250 {
		t.Errorf("HighScore = %d, expected 1250", high)
	}
}

func TestHighScoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := store.SaveScore(640); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	high, err := reopened.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 640 {
		t.Errorf("HighScore after reopen = %d, expected 640", high)
	}
}

func TestClearScores(t *testing.T) {
	store := testStore(t)

	if _, err := store.SaveScore(999); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore after clear = %d, expected 0", high)
	}

	entries, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("TopScores after clear returned %d entries", len(entries))
	}
}
