// Package places wraps the Google Places nearby-search API and turns its
// results into venue candidates for the recommendation core.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"matcha-match-be/pkg/geo"

	"github.com/patrickmn/go-cache"
)

const (
	defaultBaseURL  = "https://maps.googleapis.com/maps/api/place"
	defaultKeyword  = "matcha cafe tea"
	defaultCategory = "cafe"
	photoMaxWidth   = 400
)

// Client fetches nearby venues. Whether photo URLs can be built is decided
// once at construction: with no API key every photo degrades to the
// placeholder URL and searches serve the fixed mock list.
type Client struct {
	apiKey         string
	baseURL        string
	placeholderURL string
	httpClient     *http.Client
	cache          *cache.Cache
}

func NewClient(apiKey, placeholderURL string) *Client {
	return &Client{
		apiKey:         apiKey,
		baseURL:        defaultBaseURL,
		placeholderURL: placeholderURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// WithBaseURL overrides the API endpoint. Used in tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// HasAPIKey reports whether real directory lookups are possible.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != "" && c.apiKey != "demo-key"
}

// NearbySearch returns venues around origin within radiusMeters. Responses
// are cached briefly since repeat chats in one session tend to re-query the
// same origin. Errors are returned to the caller, which degrades to the
// mock list or "no candidates" rather than failing the request.
func (c *Client) NearbySearch(ctx context.Context, origin geo.Coordinates, radiusMeters int) ([]Venue, error) {
	if !c.HasAPIKey() {
		return c.MockVenues(origin), nil
	}

	cacheKey := fmt.Sprintf("nearby:%.4f:%.4f:%d", origin.Lat, origin.Lng, radiusMeters)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]Venue), nil
	}

	params := url.Values{}
	params.Add("location", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	params.Add("radius", strconv.Itoa(radiusMeters))
	params.Add("keyword", defaultKeyword)
	params.Add("type", defaultCategory)
	params.Add("key", c.apiKey)

	reqURL := c.baseURL + "/nearbysearch/json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places error: status %d", resp.StatusCode)
	}

	var result struct {
		Status  string `json:"status"`
		Results []struct {
			PlaceID    string   `json:"place_id"`
			Name       string   `json:"name"`
			Vicinity   string   `json:"vicinity"`
			Rating     float64  `json:"rating"`
			PriceLevel *int     `json:"price_level"`
			Types      []string `json:"types"`
			Geometry   struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
			Photos []struct {
				PhotoReference string `json:"photo_reference"`
			} `json:"photos"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if result.Status != "OK" && result.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places error: status %s", result.Status)
	}

	venues := make([]Venue, 0, len(result.Results))
	for _, r := range result.Results {
		// Venues without coordinates cannot be scored for distance.
		if r.Geometry.Location.Lat == 0 && r.Geometry.Location.Lng == 0 {
			continue
		}

		refs := make([]string, 0, len(r.Photos))
		for _, p := range r.Photos {
			refs = append(refs, p.PhotoReference)
		}

		venues = append(venues, Venue{
			PlaceID:    r.PlaceID,
			Name:       r.Name,
			Vicinity:   r.Vicinity,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
			Location:   geo.Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
			Types:      r.Types,
			PhotoURLs:  c.photoURLs(refs),
		})
	}

	c.cache.Set(cacheKey, venues, cache.DefaultExpiration)
	return venues, nil
}

// photoURLs turns photo references into fetchable URLs, limited to the first
// three. Venues without photos, and deployments without an API key, get the
// placeholder URL instead.
func (c *Client) photoURLs(refs []string) []string {
	if len(refs) == 0 || !c.HasAPIKey() {
		return []string{c.placeholderURL}
	}

	if len(refs) > 3 {
		refs = refs[:3]
	}

	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		urls = append(urls, fmt.Sprintf("%s/photo?maxwidth=%d&photoreference=%s&key=%s",
			c.baseURL, photoMaxWidth, ref, c.apiKey))
	}

	if len(urls) == 0 {
		return []string{c.placeholderURL}
	}
	return urls
}

// MockVenues is the fallback list: three plausible venues offset slightly
// from the requested origin so distance scoring still behaves. Served when
// no API key is configured and by callers degrading after a directory
// failure.
func (c *Client) MockVenues(origin geo.Coordinates) []Venue {
	return []Venue{
		{
			PlaceID:    "mock-1",
			Name:       "Zen Matcha House",
			Vicinity:   "123 Green St, Sydney NSW",
			Rating:     4.8,
			PriceLevel: intPtr(2),
			Location:   geo.Coordinates{Lat: origin.Lat + 0.001, Lng: origin.Lng + 0.001},
			Types:      []string{"cafe", "outdoor_seating"},
			PhotoURLs:  []string{c.placeholderURL},
		},
		{
			PlaceID:    "mock-2",
			Name:       "Emerald Tea Lounge",
			Vicinity:   "456 Matcha Ave, Sydney NSW",
			Rating:     4.6,
			PriceLevel: intPtr(3),
			Location:   geo.Coordinates{Lat: origin.Lat - 0.001, Lng: origin.Lng - 0.001},
			Types:      []string{"cafe", "indoor"},
			PhotoURLs:  []string{c.placeholderURL},
		},
		{
			PlaceID:    "mock-3",
			Name:       "Green Leaf Cafe",
			Vicinity:   "789 Tea Rd, Sydney NSW",
			Rating:     4.4,
			PriceLevel: intPtr(1),
			Location:   geo.Coordinates{Lat: origin.Lat + 0.002, Lng: origin.Lng - 0.002},
			Types:      []string{"cafe", "wifi"},
			PhotoURLs:  []string{c.placeholderURL},
		},
	}
}

func intPtr(n int) *int { return &n }
