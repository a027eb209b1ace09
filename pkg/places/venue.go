package places

import "matcha-match-be/pkg/geo"

// Venue is one candidate returned by the places directory. It is read-only
// within the recommendation core and fetched fresh per request.
type Venue struct {
	PlaceID    string          `json:"place_id"`
	Name       string          `json:"name"`
	Vicinity   string          `json:"vicinity"`
	Rating     float64         `json:"rating"`
	PriceLevel *int            `json:"price_level"`
	Location   geo.Coordinates `json:"location"`
	Types      []string        `json:"types"`
	PhotoURLs  []string        `json:"photos"`
}

// HasType reports whether the venue carries the given category tag.
func (v Venue) HasType(tag string) bool {
	for _, t := range v.Types {
		if t == tag {
			return true
		}
	}
	return false
}
