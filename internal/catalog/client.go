// Package catalog talks to the remote artwork catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tushar-tyagi17/artwork-dashboard/internal/domain"
)

// requestFields restricts API responses to the fields the dashboard renders.
const requestFields = "id,title,place_of_origin,artist_display,inscriptions,date_start,date_end"

// Client represents a catalog API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewClient creates a new catalog client
func NewClient(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// apiResponse is the envelope shared by the listing and search endpoints.
type apiResponse struct {
	Pagination struct {
		Total int `json:"total"`
	} `json:"pagination"`
	Data []apiArtwork `json:"data"`
}

type apiArtwork struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PlaceOfOrigin string `json:"place_of_origin"`
	ArtistDisplay string `json:"artist_display"`
	Inscriptions  string `json:"inscriptions"`
	DateStart     int    `json:"date_start"`
	DateEnd       int    `json:"date_end"`
}

// FetchPage fetches one page of the catalog. An empty or whitespace-only query
// means plain listing; anything else goes through full-text search. Both
// endpoints answer with the same envelope, so the caller sees a single Page
// shape either way.
func (c *Client) FetchPage(ctx context.Context, page int, query string) (domain.Page, error) {
	endpoint, params := c.listingRequest(page)
	if strings.TrimSpace(query) != "" {
		endpoint, params = c.searchRequest(page, query)
	}
	requestURL := endpoint + "?" + params.Encode()

	c.logger.Debugw("fetching artworks", "page", page, "query", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return domain.Page{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Page{}, fmt.Errorf("failed to fetch artworks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Page{}, fmt.Errorf("catalog API returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Page{}, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	artworks := make([]domain.Artwork, 0, len(decoded.Data))
	for _, a := range decoded.Data {
		artworks = append(artworks, domain.Artwork{
			ID:            a.ID,
			Title:         a.Title,
			PlaceOfOrigin: a.PlaceOfOrigin,
			ArtistDisplay: a.ArtistDisplay,
			Inscriptions:  a.Inscriptions,
			DateStart:     a.DateStart,
			DateEnd:       a.DateEnd,
		})
	}

	return domain.Page{Artworks: artworks, Number: page, Total: decoded.Pagination.Total}, nil
}

// listingRequest builds the plain paging request. The listing endpoint pages
// natively, so the page number passes straight through.
func (c *Client) listingRequest(page int) (string, url.Values) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(domain.PageSize))
	params.Set("fields", requestFields)
	return c.baseURL + "/artworks", params
}

// searchRequest builds the full-text request. The search endpoint takes a
// record offset instead of a page number, so the page is translated here. The
// query text itself is forwarded verbatim.
func (c *Client) searchRequest(page int, query string) (string, url.Values) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("size", strconv.Itoa(domain.PageSize))
	params.Set("from", strconv.Itoa((page-1)*domain.PageSize))
	params.Set("fields", requestFields)
	return c.baseURL + "/artworks/search", params
}
