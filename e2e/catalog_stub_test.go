//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// stubCatalog is an in-process stand-in for the artwork catalog API. It serves
// the same two endpoints the app talks to: /artworks with page/limit paging
// and /artworks/search with q/size/from offsets. Artworks are deterministic so
// scenarios can assert on concrete titles; every ninth one is a "Heron Study"
// to give searches something to find.
type stubCatalog struct {
	mu       sync.Mutex
	failing  bool
	artworks []stubArtwork // immutable after construction
}

type stubArtwork struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PlaceOfOrigin string `json:"place_of_origin"`
	ArtistDisplay string `json:"artist_display"`
	Inscriptions  string `json:"inscriptions"`
	DateStart     int    `json:"date_start"`
	DateEnd       int    `json:"date_end"`
}

func newStubCatalog(total int) *stubCatalog {
	artists := []string{"Iris Halvorsen", "Tomas Brandt", "Mei-Ling Chu"}
	origins := []string{"Netherlands", "Japan", "France", "Ghana"}
	artworks := make([]stubArtwork, 0, total)
	for i := 1; i <= total; i++ {
		title := fmt.Sprintf("Gallery Piece %03d", i)
		if i%9 == 0 {
			title = fmt.Sprintf("Heron Study %03d", i)
		}
		artworks = append(artworks, stubArtwork{
			ID:            1000 + i,
			Title:         title,
			PlaceOfOrigin: origins[i%len(origins)],
			ArtistDisplay: artists[i%len(artists)],
			DateStart:     1800 + i,
			DateEnd:       1800 + i,
		})
	}
	return &stubCatalog{artworks: artworks}
}

// setFailing makes every request answer 500 until turned off again
func (sc *stubCatalog) setFailing(failing bool) {
	sc.mu.Lock()
	sc.failing = failing
	sc.mu.Unlock()
}

func (sc *stubCatalog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sc.mu.Lock()
	failing := sc.failing
	sc.mu.Unlock()

	if failing {
		http.Error(w, `{"error":"catalog unavailable"}`, http.StatusInternalServerError)
		return
	}

	switch r.URL.Path {
	case "/artworks":
		sc.serveListing(w, r)
	case "/artworks/search":
		sc.serveSearch(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (sc *stubCatalog) serveListing(w http.ResponseWriter, r *http.Request) {
	page := intParam(r, "page", 1)
	limit := intParam(r, "limit", 12)
	writeEnvelope(w, len(sc.artworks), sliceArtworks(sc.artworks, (page-1)*limit, limit))
}

func (sc *stubCatalog) serveSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))
	var matches []stubArtwork
	for _, a := range sc.artworks {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.ArtistDisplay), q) {
			matches = append(matches, a)
		}
	}
	from := intParam(r, "from", 0)
	size := intParam(r, "size", 12)
	writeEnvelope(w, len(matches), sliceArtworks(matches, from, size))
}

func intParam(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return v
}

func sliceArtworks(artworks []stubArtwork, offset, count int) []stubArtwork {
	if offset < 0 || offset >= len(artworks) {
		return nil
	}
	end := offset + count
	if end > len(artworks) {
		end = len(artworks)
	}
	return artworks[offset:end]
}

func writeEnvelope(w http.ResponseWriter, total int, data []stubArtwork) {
	resp := struct {
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
		Data []stubArtwork `json:"data"`
	}{Data: data}
	resp.Pagination.Total = total

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
