package state

import (
	"github.com/tushar-tyagi17/artwork-dashboard/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Catalog data
	Page   domain.Page // page currently displayed, replaced wholesale per fetch
	Loaded bool        // at least one fetch has completed

	// Page-local widget selection, rebuilt whenever the page is replaced
	Checked map[int]bool // artwork ID -> checkbox state

	// UI state
	Loading       bool
	ShowHelp      bool
	StatusMessage string // status bar message
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Checked: make(map[int]bool),
	}
}

// Page operations

// SetPage replaces the displayed page and resets the page-local checkboxes
func (s *AppState) SetPage(page domain.Page) {
	s.Page = page
	s.Loaded = true
	s.Checked = make(map[int]bool)
}

// SeedChecked pre-checks the given artworks, typically the page's slice of
// the cross-page selection
func (s *AppState) SeedChecked(artworks []domain.Artwork) {
	for _, a := range artworks {
		s.Checked[a.ID] = true
	}
}

// Checkbox operations

// ToggleChecked flips the checkbox of one artwork
func (s *AppState) ToggleChecked(id int) {
	if s.Checked[id] {
		delete(s.Checked, id)
	} else {
		s.Checked[id] = true
	}
}

// CheckAll checks every row on the page
func (s *AppState) CheckAll() {
	for _, a := range s.Page.Artworks {
		s.Checked[a.ID] = true
	}
}

// UncheckAll unchecks every row on the page
func (s *AppState) UncheckAll() {
	s.Checked = make(map[int]bool)
}

// CheckedArtworks returns the page's checked artworks in page order
func (s *AppState) CheckedArtworks() []domain.Artwork {
	var checked []domain.Artwork
	for _, a := range s.Page.Artworks {
		if s.Checked[a.ID] {
			checked = append(checked, a)
		}
	}
	return checked
}

// IsChecked reports the checkbox state of one artwork
func (s *AppState) IsChecked(id int) bool {
	return s.Checked[id]
}

// CheckedCount returns how many rows on the page are checked
func (s *AppState) CheckedCount() int {
	return len(s.Checked)
}
