package dto

// Places API DTOs

type PlacesQuery struct {
	Lat          *float64 `query:"lat"`
	Lng          *float64 `query:"lng"`
	SessionID    string   `query:"session_id"`
	Sentiment    string   `query:"sentiment"`
	Budget       string   `query:"budget"`
	Vibe         string   `query:"vibe"`
	SpecialNeeds string   `query:"special_needs"`
	Occasion     string   `query:"occasion"`
	Weather      string   `query:"weather"`
}

type PlaceDTO struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Vicinity   string   `json:"vicinity"`
	Rating     float64  `json:"rating"`
	PriceLevel *int     `json:"price_level,omitempty"`
	PriceRange string   `json:"price_range"`
	Score      int      `json:"score"`
	DistanceKm float64  `json:"distance_km"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Types      []string `json:"types"`
	Photos     []string `json:"photos"`
}

type PlacesResponse struct {
	Places []PlaceDTO `json:"places"`
}
