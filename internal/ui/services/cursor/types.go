package cursor

// State holds the query state the catalog is fetched with
type State struct {
	Page  int    // 1-based
	Query string // "" means plain listing
}

// Event types
type QueryStateChangedEvent struct {
	Page  int
	Query string
}
