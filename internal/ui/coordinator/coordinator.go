// Package coordinator wires the UI services together and hands them to the
// presentation layer as one session-scoped unit. All state lives here or in
// the services it owns, nothing is package-global.
package coordinator

import (
	"fmt"

	"github.com/tushar-tyagi17/artwork-dashboard/internal/domain"
	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/services/cursor"
	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/services/events"
	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/services/selection"
)

// Coordinator manages the UI services and their interactions
type Coordinator struct {
	// Services
	Cursor    *cursor.Service
	Selection *selection.Service

	// Dependencies
	bus events.EventBus
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(bus events.EventBus) *Coordinator {
	return &Coordinator{
		Cursor:    cursor.NewService(bus),
		Selection: selection.NewService(bus),
		bus:       bus,
	}
}

// QueryState returns the (page, query) pair fetches are keyed on
func (c *Coordinator) QueryState() (int, string) {
	return c.Cursor.GetPage(), c.Cursor.GetQuery()
}

// OnQueryStateChanged registers a callback fired once per cursor change.
// Dispatch is synchronous, so the callback runs before the mutating call
// returns.
func (c *Coordinator) OnQueryStateChanged(fn func(page int, query string)) {
	c.bus.Subscribe(fmt.Sprintf("%T", cursor.QueryStateChangedEvent{}), func(e interface{}) {
		if evt, ok := e.(cursor.QueryStateChangedEvent); ok {
			fn(evt.Page, evt.Query)
		}
	})
}

// SelectedCount returns the size of the cross-page selection set
func (c *Coordinator) SelectedCount() int {
	return c.Selection.GetCount()
}

// VisibleSelection returns the current page's selected artworks in page order
func (c *Coordinator) VisibleSelection(page []domain.Artwork) []domain.Artwork {
	return c.Selection.VisibleSelection(page)
}
