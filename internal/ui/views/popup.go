package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles modal overlays drawn on top of the main view.
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Overlay centers popup content on top of the base view. Rows covered by
// the popup are replaced whole, so styled base lines are never cut in the
// middle of an escape sequence; the remaining rows are desaturated to push
// focus onto the modal.
func (pr *PopupRenderer) Overlay(base, popup string, width, height int) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	styledPopup := pr.styles.HelpBox.Render(popup)
	popupLines := strings.Split(styledPopup, "\n")

	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	if len(baseLines) > height {
		baseLines = baseLines[:height]
	}

	top := (len(baseLines) - len(popupLines)) / 2
	if top < 0 {
		top = 0
	}

	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		j := i - top
		if j >= 0 && j < len(popupLines) {
			out[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, popupLines[j])
		} else {
			out[i] = pr.desaturate(line)
		}
	}
	return strings.Join(out, "\n")
}

// desaturate strips ANSI color/style codes from a line and repaints it gray.
func (pr *PopupRenderer) desaturate(line string) string {
	plain := ansiRE.ReplaceAllString(line, "")
	if plain == "" {
		return ""
	}
	return pr.styles.Overlay.Render(plain)
}
