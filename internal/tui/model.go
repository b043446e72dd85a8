package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// redrawInterval paces the periodic refresh that keeps the aim readout live
// while the positioning subsystem republishes state.
const redrawInterval = 250 * time.Millisecond

// redrawTickMsg fires on every refresh tick.
type redrawTickMsg struct{}

// Model is the root Bubble Tea model: the display/input host around the
// screen controller. It translates terminal keys into the core's key events
// and ticks a redraw timer.
type Model struct {
	controller *Controller
	keys       keyMap
	width      int
	height     int
	quitting   bool
}

func NewModel(controller *Controller) Model {
	return Model{controller: controller, keys: newKeyMap()}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tickRedraw()
}

func (m Model) tickRedraw() tea.Cmd {
	return tea.Tick(redrawInterval, func(time.Time) tea.Msg {
		return redrawTickMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model contract.
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(x, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if ev, ok := translateKey(x, m.keys); ok {
			m.controller.HandleKey(ev)
		}
		return m, nil

	case redrawTickMsg:
		return m, m.tickRedraw()
	}
	return m, nil
}

// translateKey maps a terminal key press onto the core key alphabet.
func translateKey(msg tea.KeyMsg, keys keyMap) (KeyEvent, bool) {
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return Digit(int(s[0] - '0')), true
	}
	switch {
	case key.Matches(msg, keys.Up):
		return KeyEvent{Kind: KindUp}, true
	case key.Matches(msg, keys.Down):
		return KeyEvent{Kind: KindDown}, true
	case key.Matches(msg, keys.Enter):
		return KeyEvent{Kind: KindEnter}, true
	case key.Matches(msg, keys.CatalogCycle):
		return KeyEvent{Kind: KindCatalogCycle}, true
	case key.Matches(msg, keys.ListSwitch):
		return KeyEvent{Kind: KindListSwitch}, true
	case key.Matches(msg, keys.Save):
		return KeyEvent{Kind: KindSave}, true
	case key.Matches(msg, keys.Load):
		return KeyEvent{Kind: KindLoad}, true
	}
	return KeyEvent{}, false
}
