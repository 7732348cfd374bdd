package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
	"github.com/vovakirdan/waverider/internal/registry"
	"github.com/vovakirdan/waverider/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func findItem(t *testing.T, items []MenuItem, id string) MenuItem {
	t.Helper()
	for _, it := range items {
		if it.GameID == id {
			return it
		}
	}
	t.Fatalf("mode %q missing from menu", id)
	return MenuItem{}
}

func TestMenuItemsShowBestAndLog(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("waverider", "calm", 300)
	store.SaveScore("waverider", "storm", 700)
	store.SaveVoyage(storage.Voyage{GameID: "waverider", SeaState: "calm", Score: 300, Distance: 120})
	store.SaveVoyage(storage.Voyage{GameID: "waverider", SeaState: "storm", Score: 700, Distance: 80})

	m := NewMenuModel(store, testRuntime())

	campaign := findItem(t, m.items, "waverider")
	if campaign.Best != 700 || campaign.BestSea != "storm" {
		t.Errorf("best = %d on %q, expected 700 on storm", campaign.Best, campaign.BestSea)
	}
	if campaign.Voyages != 2 || campaign.Sailed != 200 {
		t.Errorf("log = %d voyages over %.0fm, expected 2 over 200m", campaign.Voyages, campaign.Sailed)
	}

	endless := findItem(t, m.items, "waverider_endless")
	if endless.Best != 0 || endless.Voyages != 0 {
		t.Errorf("unsailed mode has data: %+v", endless)
	}

	view := m.View()
	for _, want := range []string{"best 700 (storm)", "no score yet", "2 voyages logged, 200m sailed", modeBlurbs["waverider"]} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuDetailFollowsCursor(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	if !strings.Contains(m.View(), "No voyages logged yet") {
		t.Error("menu without a store should show an empty log")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	item := m.items[m.cursor]
	if !strings.Contains(m.View(), modeBlurbs[item.GameID]) {
		t.Errorf("detail should describe %q after moving the cursor", item.GameID)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().GameID != item.GameID || cmd == nil {
		t.Errorf("enter should select %q and quit the menu", item.GameID)
	}
}

func TestBestAndLogText(t *testing.T) {
	tests := []struct {
		item MenuItem
		best string
		log  string
	}{
		{MenuItem{}, "no score yet", "No voyages logged yet"},
		{MenuItem{Best: 50, Voyages: 1, Sailed: 12.4}, "best 50", "1 voyage logged, 12m sailed"},
		{MenuItem{Best: 900, BestSea: "rough", Voyages: 3, Sailed: 300}, "best 900 (rough)", "3 voyages logged, 300m sailed"},
	}
	for _, tc := range tests {
		if got := bestText(tc.item); got != tc.best {
			t.Errorf("bestText(%+v) = %q, expected %q", tc.item, got, tc.best)
		}
		if got := logText(tc.item); got != tc.log {
			t.Errorf("logText(%+v) = %q, expected %q", tc.item, got, tc.log)
		}
	}
}

func TestSaveResultRecordsSeaState(t *testing.T) {
	store := openTestStore(t)

	game, err := registry.Create("waverider")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	game.(seaSetter).SetSea(config.SeaStorm)
	game.Reset(testRuntime())

	saveResult(store, game, core.GameState{Score: 400, GameOver: true}, "ahab")
	saveResult(store, game, core.GameState{Score: 0, GameOver: true}, "ahab")

	scores, err := store.TopScores("waverider", "storm", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 400 {
		t.Fatalf("storm scores = %+v, expected only the 400 (zero scores are not ranked)", scores)
	}

	voyages, err := store.RecentVoyages("waverider", 10)
	if err != nil {
		t.Fatalf("RecentVoyages() failed: %v", err)
	}
	if len(voyages) != 2 {
		t.Fatalf("logged %d voyages, expected both", len(voyages))
	}
	for _, v := range voyages {
		if v.Player != "ahab" || v.SeaState != "storm" {
			t.Errorf("voyage %+v should belong to ahab on storm", v)
		}
	}

	// A nil store is a no-op
	saveResult(nil, game, core.GameState{Score: 100, GameOver: true}, "ahab")
}
