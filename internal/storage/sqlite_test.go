package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/skyfall/internal/core"
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

func saveScores(t *testing.T, store *Store, variant string, scores ...int) {
	t.Helper()
	for _, score := range scores {
		r := RoundRecord{
			RoundID: uuid.NewString(),
			Variant: variant,
			Score:   score,
			Cause:   string(core.EndCauseEnemy),
		}
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRounds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	saveScores(t, store, "normal", 42)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("normal")
	if err != nil || high != 42 {
		t.Errorf("HighScore() = %d, %v; expected 42", high, err)
	}
}

func TestTopRoundsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, "normal", 100, 50, 200, 75)
	saveScores(t, store, "hard", 500)

	rounds, err := store.TopRounds("normal", 3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}

	want := []int{200, 100, 75}
	if len(rounds) != len(want) {
		t.Fatalf("expected %d rounds, got %d", len(want), len(rounds))
	}
	for i, score := range want {
		if rounds[i].Score != score {
			t.Errorf("rank %d score = %d, expected %d", i+1, rounds[i].Score, score)
		}
		if rounds[i].Variant != "normal" {
			t.Errorf("rank %d variant = %q", i+1, rounds[i].Variant)
		}
	}

	all, err := store.AllRounds("normal")
	if err != nil || len(all) != 4 {
		t.Errorf("AllRounds() = %d rounds, %v; expected 4", len(all), err)
	}
}

func TestTopRoundsDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		saveScores(t, store, "normal", i)
	}

	rounds, err := store.TopRounds("normal", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rounds) != 10 {
		t.Errorf("expected default limit of 10, got %d", len(rounds))
	}
}

func TestSaveRoundFromSummary(t *testing.T) {
	store := openTestStore(t)

	sum := core.RoundSummary{
		RoundID:           "0b8d6a52-0c7e-4f7e-9d53-9d2b8c1f7a10",
		Score:             33,
		Cause:             core.EndCauseOutOfWorld,
		Ticks:             1200,
		StarsCollected:    3,
		CoinsCollected:    1,
		PowerUpsCollected: 2,
		EnemiesDestroyed:  1,
		ShotsFired:        9,
	}
	if _, err := store.SaveRound(RecordFromSummary("hard", sum)); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	got, err := store.RoundByID(sum.RoundID)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("round not found")
	}
	if got.Variant != "hard" || got.Score != 33 || got.Cause != "out_of_world" || got.Ticks != 1200 {
		t.Errorf("unexpected record %+v", got)
	}
	if got.Stars != 3 || got.Coins != 1 || got.PowerUps != 2 || got.Enemies != 1 || got.Shots != 9 {
		t.Errorf("counters not stored: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}

	if _, err := store.SaveRound(RecordFromSummary("hard", sum)); err == nil {
		t.Error("saving the same round twice should fail")
	}

	missing, err := store.RoundByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RoundByID(missing) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for empty table, got %d", high)
	}
}

func TestClearRounds(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, "normal", 10, 20)
	saveScores(t, store, "easy", 30)

	if err := store.ClearRounds("normal"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, _ := store.TopRounds("normal", 10)
	if len(rounds) != 0 {
		t.Errorf("expected no normal rounds, got %d", len(rounds))
	}
	high, _ := store.HighScore("easy")
	if high != 30 {
		t.Errorf("other variants should be untouched, got high %d", high)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	records := []RoundRecord{
		{RoundID: "a", Variant: "normal", Score: 10, Cause: "enemy", Stars: 2, Coins: 1},
		{RoundID: "b", Variant: "normal", Score: 30, Cause: "out_of_world", Enemies: 1},
		{RoundID: "c", Variant: "normal", Score: 20, Cause: "enemy", Stars: 1},
	}
	for _, r := range records {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 3 || stats.HighScore != 30 || stats.TotalScore != 60 || stats.AvgScore != 20 {
		t.Errorf("unexpected totals %+v", stats)
	}
	if stats.Stars != 3 || stats.Coins != 1 || stats.Enemies != 1 {
		t.Errorf("unexpected collection totals %+v", stats)
	}
	if stats.Causes["enemy"] != 2 || stats.Causes["out_of_world"] != 1 {
		t.Errorf("unexpected causes %v", stats.Causes)
	}

	empty, err := store.Stats("hard")
	if err != nil {
		t.Fatal(err)
	}
	if empty.Rounds != 0 || len(empty.Causes) != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty variant should have zero stats, got %+v", empty)
	}
}
