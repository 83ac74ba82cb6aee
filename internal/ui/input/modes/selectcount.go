package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/input/types"
)

// SelectCountMode prompts for how many rows of the page to select. The typed
// text is parsed on submit; anything that is not a positive number is dropped.
type SelectCountMode struct {
	TextInputMode
}

func NewSelectCountMode(ti *textinput.Model) *SelectCountMode {
	return &SelectCountMode{
		TextInputMode: NewTextInputMode(types.ModeSelectCount, "select-count", "Select first: ", ti),
	}
}
