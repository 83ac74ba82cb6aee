package domain

// PageSize is the fixed number of artworks requested per page. Listing and
// search requests both use it, and page arithmetic everywhere assumes it.
const PageSize = 12

// Artwork represents a single catalog record. Only ID is meaningful to the
// application logic; the remaining fields are display-only.
type Artwork struct {
	ID            int
	Title         string
	PlaceOfOrigin string
	ArtistDisplay string // attribution text, may span multiple lines
	Inscriptions  string // free-text annotation ("" when the record has none)
	DateStart     int
	DateEnd       int
}

// Page is one fetched page of the catalog. It is replaced wholesale on every
// fetch; nothing merges page contents across fetches.
type Page struct {
	Artworks []Artwork // server order
	Number   int       // 1-based page number this data was fetched for
	Total    int       // server-reported total matching records
}

// TotalPages returns how many pages the server-reported total spans.
func (p Page) TotalPages() int {
	if p.Total <= 0 {
		return 0
	}
	return (p.Total + PageSize - 1) / PageSize
}

// ArtworkIDs returns the identifiers of the page's artworks in page order.
func (p Page) ArtworkIDs() []int {
	ids := make([]int, len(p.Artworks))
	for i, a := range p.Artworks {
		ids[i] = a.ID
	}
	return ids
}
