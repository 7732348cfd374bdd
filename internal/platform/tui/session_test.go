package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
	_ "github.com/vovakirdan/waverider/internal/games/waverider"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm
}

func TestSeaStateModelSelection(t *testing.T) {
	m := NewSeaStateModel("Waverider", config.SeaRough, 80, 24)
	if m.Selected() != nil {
		t.Fatal("nothing should be selected yet")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(SeaStateModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SeaStateModel)

	sel := m.Selected()
	if sel == nil || *sel != config.SeaStorm {
		t.Fatalf("selected %v, expected storm (cursor starts on rough)", sel)
	}
	if cmd == nil {
		t.Error("selecting should end the standalone program")
	}
}

func TestSeaStateModelBack(t *testing.T) {
	m := NewSeaStateModel("Waverider", config.SeaModerate, 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(SeaStateModel)

	if !m.WantsBack() {
		t.Error("esc should go back")
	}
	if m.Selected() != nil {
		t.Error("going back should not select anything")
	}
}

func TestSessionFlowStartsVoyage(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester", config.SeaModerate)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.stage != stageSeaState {
		t.Fatalf("stage = %v after picking a mode, expected sea state", m.stage)
	}
	if m.selected.GameID != "waverider" {
		t.Errorf("selected %q, expected the campaign first", m.selected.GameID)
	}

	// Calm is one step up from moderate
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.stage != stageGame || m.gameModel == nil {
		t.Fatalf("stage = %v, expected a running game", m.stage)
	}
	if m.sea != config.SeaCalm {
		t.Errorf("session sea = %q, expected calm", m.sea)
	}

	voyage := m.gameModel.game.(interface{ Voyage() core.Voyage }).Voyage()
	if voyage.SeaState != string(config.SeaCalm) {
		t.Errorf("game sails %q, expected the sea picked in the session", voyage.SeaState)
	}

	// A tick advances the simulation and the view renders
	m = send(t, m, TickMsg{})
	if m.View() == "" {
		t.Error("game view should not be empty")
	}
}

func TestSessionBackFromSeaState(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester", config.SeaModerate)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	if m.stage != stageMenu {
		t.Errorf("stage = %v, expected menu after backing out", m.stage)
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be fresh after going back")
	}
}

func TestSessionScoreboardWithoutStore(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester", config.SeaModerate)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.stage != stageScoreboard {
		t.Fatalf("stage = %v, expected scoreboard", m.stage)
	}
	if m.View() == "" {
		t.Error("scoreboard should render without a store")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.stage != stageMenu {
		t.Errorf("stage = %v, expected menu after leaving the scoreboard", m.stage)
	}
}

func TestGameModelBackOnlyWhenPaused(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "tester", config.SeaModerate)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(t, m, runeKey('b'))
	if m.stage != stageGame {
		t.Fatal("b while sailing should not leave the game")
	}

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey('b'))
	if m.stage != stageMenu {
		t.Errorf("stage = %v, expected menu after b while paused", m.stage)
	}
}
