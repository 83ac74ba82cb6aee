package ui

import (
	"github.com/tushar-tyagi17/artwork-dashboard/internal/domain"
)

// pageLoadedMsg carries the result of a catalog fetch. page and query echo
// the request so responses that no longer match the cursor can be dropped.
type pageLoadedMsg struct {
	page   int
	query  string
	result domain.Page
	err    error
}

// detailClosedMsg is sent when the artwork detail pager exits
type detailClosedMsg struct {
	err error
}

// clearStatusMsg clears the transient status message
type clearStatusMsg struct{}
