package selection

// State holds the cross-page selection state
type State struct {
	Selected map[int]bool // artwork ID -> selected
}

// Event types
type SelectionChangedEvent struct {
	Added   []int
	Removed []int
	Total   int
}

type SelectionClearedEvent struct{}
