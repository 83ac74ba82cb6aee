package input

import (
	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/coordinator"
	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	Coord *coordinator.Coordinator
}

// CurrentPage returns the page the cursor is on
func (c *ModelContext) CurrentPage() int {
	page, _ := c.Coord.QueryState()
	return page
}

// TotalPages returns the page count of the last loaded result set
func (c *ModelContext) TotalPages() int {
	return c.State.Page.TotalPages()
}

// RowCount returns the number of rows on the current page
func (c *ModelContext) RowCount() int {
	return len(c.State.Page.Artworks)
}

// HasQuery returns true when a search query is active
func (c *ModelContext) HasQuery() bool {
	_, query := c.Coord.QueryState()
	return query != ""
}

// HasSelection returns true if any artworks are selected
func (c *ModelContext) HasSelection() bool {
	return c.Coord.Selection.HasSelection()
}

// SelectedCount returns the size of the cross-page selection set
func (c *ModelContext) SelectedCount() int {
	return c.Coord.SelectedCount()
}

// HelpVisible returns true while the help popup is open
func (c *ModelContext) HelpVisible() bool {
	return c.State.ShowHelp
}
