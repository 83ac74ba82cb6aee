package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Loaded  bool
	Loading bool
	Spinner string

	Query     string
	InputMode string
	TextInput string

	Table     string
	RowCount  int
	Paginator string

	Page         int
	TotalPages   int
	TotalResults int

	SelectedCount int
	StatusMessage string

	ShowHelp    bool
	HelpContent string
	Footer      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title with right-aligned activity indicators
	logo := r.styles.Title.Render("artdash")

	indicators := []string{}
	if state.Loading {
		indicators = append(indicators, fmt.Sprintf("%s %s", state.Spinner, r.styles.Dim.Render("fetching")))
	}
	if state.Query != "" {
		indicators = append(indicators, r.styles.Query.Render(fmt.Sprintf("[Search: %s]", state.Query)))
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding

	titleLine := logo
	if len(indicators) > 0 {
		rightContent := strings.Join(indicators, "  ")
		paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
		if paddingWidth > 0 {
			titleLine = fmt.Sprintf("%s%s%s", logo, strings.Repeat(" ", paddingWidth), rightContent)
		} else {
			// If not enough space, just show with minimal spacing
			titleLine = fmt.Sprintf("%s  %s", logo, rightContent)
		}
	}

	content.WriteString(titleLine)
	content.WriteString("\n")

	// Text prompt while typing a search or a selection count
	if state.InputMode != "" {
		content.WriteString(state.TextInput)
		content.WriteString("\n")
		content.WriteString("\n")
	}

	content.WriteString(r.renderCatalog(state))
	content.WriteString("\n")

	if state.Paginator != "" {
		content.WriteString("\n")
		content.WriteString(lipgloss.PlaceHorizontal(availableWidth, lipgloss.Center, state.Paginator))
		content.WriteString("\n")
	}

	if statusLine := r.renderStatus(state); statusLine != "" {
		content.WriteString(statusLine)
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		content.WriteString(r.styles.Notice.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	// Footer help line pinned to the bottom
	if !state.ShowHelp {
		footer := state.Footer
		if footer == "" {
			footer = r.styles.Help.Render("Press ? for help")
		}

		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}

		paddingNeeded := availableLines - currentLines - 1
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(footer)
	}

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		popup := r.styles.HelpTitle.Render("artdash keys") + "\n" + state.HelpContent
		return r.popupRender.Overlay(finalContent, popup, state.Width, state.Height)
	}

	return finalContent
}

// renderCatalog renders the artwork table or a placeholder for empty states
func (r *Renderer) renderCatalog(state ViewState) string {
	if !state.Loaded {
		if state.Loading {
			return r.styles.Dim.Render("Fetching artworks...")
		}
		return r.styles.Dim.Render("Waiting for the catalog...")
	}

	if state.RowCount == 0 {
		if state.Query != "" {
			return r.styles.Dim.Render(fmt.Sprintf("No artworks match %q. Press esc to clear the search.", state.Query))
		}
		return r.styles.Dim.Render("The catalog came back empty.")
	}

	return state.Table
}

// renderStatus renders the counts line under the catalog table
func (r *Renderer) renderStatus(state ViewState) string {
	if !state.Loaded {
		return ""
	}

	totalPages := state.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}

	parts := []string{
		fmt.Sprintf("%d artworks", state.TotalResults),
		fmt.Sprintf("page %d/%d", state.Page, totalPages),
		fmt.Sprintf("%d selected", state.SelectedCount),
	}

	return r.styles.Status.Render(strings.Join(parts, " | "))
}
