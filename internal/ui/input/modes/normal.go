package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// While the help popup is open, only dismissal keys do anything.
	if ctx.HelpVisible() {
		switch msg.String() {
		case "ctrl+c":
			return []types.Action{types.QuitAction{Force: true}}, true
		case "esc", "q", "?":
			return []types.Action{types.ToggleHelpAction{}}, true
		default:
			return nil, true
		}
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.ChangePageAction{Direction: "prev"}}, true

	case tea.KeyRight:
		return []types.Action{types.ChangePageAction{Direction: "next"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.ChangePageAction{Direction: "prev"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.ChangePageAction{Direction: "next"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "top"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "bottom"}}, true

	case tea.KeyEnter:
		if ctx.RowCount() > 0 {
			return []types.Action{types.OpenDetailAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.ChangePageAction{Direction: "prev"}}, true

	case "l":
		return []types.Action{types.ChangePageAction{Direction: "next"}}, true

	case " ":
		// Space toggles the checkbox of the current row
		if ctx.RowCount() > 0 {
			return []types.Action{types.ToggleSelectAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "a":
		// Check every row on the page
		if ctx.RowCount() > 0 {
			return []types.Action{types.SelectPageAction{}}, true
		}
		return nil, true

	case "A":
		// Uncheck every row on the page; selections on other pages survive
		if ctx.RowCount() > 0 {
			return []types.Action{types.UnselectPageAction{}}, true
		}
		return nil, true

	case "c":
		// Clear the whole selection set
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		return nil, true

	case "s":
		// Enter select-count mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSelectCount}}, true

	case "/":
		// Enter search mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "r":
		// Refetch the current page
		return []types.Action{types.RefreshAction{}}, true

	case "?":
		// Toggle help
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		// Clear the active search if any, otherwise do nothing
		if ctx.HasQuery() {
			return []types.Action{types.ClearQueryAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "q":
		// Quit
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to first page (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.ChangePageAction{Direction: "first"}}, true
		} else {
			// First g, wait for next key
			m.lastKeyWasG = true
			m.lastGTime = time.Now()
			return nil, true // consume the key but don't do anything
		}

	case "G":
		// G - go to last page
		m.lastKeyWasG = false
		return []types.Action{types.ChangePageAction{Direction: "last"}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG && msg.String() != "g" {
			m.lastKeyWasG = false
		}
		// Also cancel if too much time has passed since first 'g'
		if m.lastKeyWasG && time.Since(m.lastGTime) >= 500*time.Millisecond {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
