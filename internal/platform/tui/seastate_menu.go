package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/core"
)

// Descriptions shown next to each sea state
var seaDescriptions = map[config.SeaState]string{
	config.SeaCalm:     "gentle swell, easy steering",
	config.SeaModerate: "the swell as configured",
	config.SeaRough:    "taller, sharper crests",
	config.SeaStorm:    "hold on to something",
}

// SeaStateModel lets users choose the sea state before a voyage.
type SeaStateModel struct {
	cursor    int
	width     int
	height    int
	title     string
	keyMapper *KeyMapper
	selection config.SeaState
	choosing  bool
	quitting  bool
	back      bool
}

// NewSeaStateModel creates a sea state picker for the given game title.
// The cursor starts on current.
func NewSeaStateModel(title string, current config.SeaState, width, height int) SeaStateModel {
	cursor := 0
	for i, s := range config.SeaStates {
		if s == current {
			cursor = i
		}
	}

	return SeaStateModel{
		cursor:    cursor,
		width:     width,
		height:    height,
		title:     title,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SeaStateModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SeaStateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SeaStateModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(config.SeaStates)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = config.SeaStates[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the sea state list.
func (m SeaStateModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select sea state:", m.width))
	b.WriteString("\n\n")

	for i, s := range config.SeaStates {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-9s %s", cursor, s.Title(), seaDescriptions[s])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Set sail  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen sea state, or nil if still choosing.
func (m SeaStateModel) Selected() *config.SeaState {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SeaStateModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SeaStateModel) WantsBack() bool {
	return m.back
}

// RunSeaStateSelector runs the sea state picker. A nil selection means the
// user backed out or quit.
func RunSeaStateSelector(title string, current config.SeaState, cfg core.RuntimeConfig) (*config.SeaState, error) {
	model := NewSeaStateModel(title, current, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SeaStateModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
