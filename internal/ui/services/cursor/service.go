// Package cursor tracks which slice of the catalog the dashboard is looking
// at: the current page number and the active search query.
package cursor

import (
	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/services/events"
)

// Service handles page and query state
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new cursor service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{Page: 1},
		bus:   bus,
	}
}

// GoToPage moves to the given page, leaving the query untouched. The cursor
// holds intent only: callers clamp against the page count before calling,
// nothing is validated here. Asking for the current page again changes
// nothing and publishes nothing.
func (s *Service) GoToPage(page int) {
	if page == s.state.Page {
		return // same page
	}

	s.state.Page = page
	s.publishChanged()
}

// SetQuery replaces the query and snaps back to page 1 in the same mutation,
// so a new result set is never entered on a page it may not have. One event
// covers both fields. When query and page already hold the target values,
// nothing changes and nothing is published.
func (s *Service) SetQuery(query string) {
	if query == s.state.Query && s.state.Page == 1 {
		return // nothing to change
	}

	s.state.Query = query
	s.state.Page = 1
	s.publishChanged()
}

// GetPage returns the current 1-based page number
func (s *Service) GetPage() int {
	return s.state.Page
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// publishChanged emits the single event for a state mutation. Page and query
// travel together because refetches are keyed on the pair.
func (s *Service) publishChanged() {
	s.bus.Publish(QueryStateChangedEvent{
		Page:  s.state.Page,
		Query: s.state.Query,
	})
}
