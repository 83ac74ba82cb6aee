// Package selection owns the set of selected artwork IDs. The set lives for
// the whole session: paging and searching never change it, only the
// operations here do.
package selection

import (
	"github.com/tushar-tyagi17/artwork-dashboard/internal/domain"
	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/services/events"
)

// Service handles selection logic
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new selection service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			Selected: make(map[int]bool),
		},
		bus: bus,
	}
}

// Reconcile applies the page's reported checked rows to the set. Artworks on
// the page follow the report exactly: checked rows join the set, unchecked
// rows leave it. IDs not on the page keep their membership untouched, even
// when they appear only in checkedOnPage.
func (s *Service) Reconcile(pageArtworks, checkedOnPage []domain.Artwork) {
	checked := make(map[int]bool, len(checkedOnPage))
	for _, a := range checkedOnPage {
		checked[a.ID] = true
	}

	var added, removed []int
	for _, a := range pageArtworks {
		switch {
		case checked[a.ID] && !s.state.Selected[a.ID]:
			s.state.Selected[a.ID] = true
			added = append(added, a.ID)
		case !checked[a.ID] && s.state.Selected[a.ID]:
			delete(s.state.Selected, a.ID)
			removed = append(removed, a.ID)
		}
	}

	if len(added) > 0 || len(removed) > 0 {
		s.bus.Publish(SelectionChangedEvent{
			Added:   added,
			Removed: removed,
			Total:   len(s.state.Selected),
		})
	}
}

// SelectFirstN adds the first n artworks of the page to the set. It never
// removes anything; already-selected rows stay selected. n beyond the page
// length clamps to the page, n <= 0 is a silent no-op.
func (s *Service) SelectFirstN(pageArtworks []domain.Artwork, n int) {
	if n <= 0 {
		return
	}
	if n > len(pageArtworks) {
		n = len(pageArtworks)
	}

	var added []int
	for _, a := range pageArtworks[:n] {
		if !s.state.Selected[a.ID] {
			s.state.Selected[a.ID] = true
			added = append(added, a.ID)
		}
	}

	if len(added) > 0 {
		s.bus.Publish(SelectionChangedEvent{
			Added: added,
			Total: len(s.state.Selected),
		})
	}
}

// VisibleSelection returns the page's artworks that are in the set, in page
// order. This is what the table re-checks when a page is entered.
func (s *Service) VisibleSelection(pageArtworks []domain.Artwork) []domain.Artwork {
	var visible []domain.Artwork
	for _, a := range pageArtworks {
		if s.state.Selected[a.ID] {
			visible = append(visible, a)
		}
	}
	return visible
}

// DeselectAll clears all selections
func (s *Service) DeselectAll() {
	s.state.Selected = make(map[int]bool)

	s.bus.Publish(SelectionClearedEvent{})
}

// IsSelected checks if an artwork is selected
func (s *Service) IsSelected(id int) bool {
	return s.state.Selected[id]
}

// GetSelected returns all selected artwork IDs
func (s *Service) GetSelected() []int {
	var selected []int
	for id := range s.state.Selected {
		selected = append(selected, id)
	}
	return selected
}

// GetCount returns the number of selected artworks
func (s *Service) GetCount() int {
	return len(s.state.Selected)
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return len(s.state.Selected) > 0
}
