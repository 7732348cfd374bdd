package storage

import (
	"math"
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

func TestSaveAndListVoyages(t *testing.T) {
	store := openTestStore(t)

	voyages := []Voyage{
		{GameID: "waverider", SeaState: "calm", Score: 300, Collected: 3, Distance: 120.5, Duration: 60},
		{GameID: "waverider", SeaState: "storm", Player: "ahab", Score: 900, Collected: 8, Distance: 400, Duration: 240},
		{GameID: "waverider_endless", SeaState: "moderate", Score: 100, Collected: 1, Distance: 10, Duration: 30},
	}
	for _, v := range voyages {
		if _, err := store.SaveVoyage(v); err != nil {
			t.Fatalf("SaveVoyage() failed: %v", err)
		}
	}

	got, err := store.RecentVoyages("waverider", 10)
	if err != nil {
		t.Fatalf("RecentVoyages() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 voyages, got %d", len(got))
	}
	// Newest first
	if got[0].SeaState != "storm" || got[0].Player != "ahab" || got[0].Distance != 400 {
		t.Errorf("Unexpected newest voyage: %+v", got[0])
	}
	if got[1].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	all, err := store.RecentVoyages("", 10)
	if err != nil {
		t.Fatalf("RecentVoyages(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 voyages across modes, got %d", len(all))
	}

	limited, _ := store.RecentVoyages("", 1)
	if len(limited) != 1 {
		t.Errorf("Expected limit 1, got %d", len(limited))
	}
}

func TestVoyageTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.VoyageTotals("waverider")
	if err != nil {
		t.Fatalf("VoyageTotals() on empty log failed: %v", err)
	}
	if empty.Voyages != 0 || empty.Distance != 0 {
		t.Errorf("Expected zero totals, got %+v", empty)
	}

	store.SaveVoyage(Voyage{GameID: "waverider", SeaState: "calm", Score: 200, Collected: 2, Distance: 50.25, Duration: 10})
	store.SaveVoyage(Voyage{GameID: "waverider", SeaState: "rough", Score: 500, Collected: 5, Distance: 49.75, Duration: 20})
	store.SaveVoyage(Voyage{GameID: "waverider_endless", SeaState: "calm", Score: 999, Collected: 9})

	tot, err := store.VoyageTotals("waverider")
	if err != nil {
		t.Fatalf("VoyageTotals() failed: %v", err)
	}
	if tot.Voyages != 2 || tot.Collected != 7 || tot.BestScore != 500 {
		t.Errorf("Unexpected totals: %+v", tot)
	}
	if math.Abs(tot.Distance-100) > 1e-9 || math.Abs(tot.Duration-30) > 1e-9 {
		t.Errorf("Unexpected distance/duration: %+v", tot)
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("waverider", "calm", 100)
	store.SaveScore("waverider", "storm", 300)

	stats, err := store.GetGameStats("waverider")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
	}

	none, err := store.GetGameStats("unknown")
	if err != nil {
		t.Fatalf("GetGameStats(unknown) failed: %v", err)
	}
	if none.GamesCount != 0 || !none.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for unknown game: %+v", none)
	}
}
