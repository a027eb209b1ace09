package service

import (
	"context"
	"sort"
	"time"

	"matcha-match-be/internal/constant"
	"matcha-match-be/internal/dto"
	"matcha-match-be/internal/pkg/logger"
	"matcha-match-be/internal/repository/memory"
	"matcha-match-be/pkg/geo"
	"matcha-match-be/pkg/match"
	"matcha-match-be/pkg/places"
)

type IPlacesService interface {
	GetPlaces(ctx context.Context, query *dto.PlacesQuery) (*dto.PlacesResponse, error)
}

type placesService struct {
	placesClient  *places.Client
	sentimentRepo *memory.SentimentCacheRepository
	log           logger.ILogger

	defaultOrigin geo.Coordinates
	searchRadius  int
}

func NewPlacesService(
	placesClient *places.Client,
	sentimentRepo *memory.SentimentCacheRepository,
	log logger.ILogger,
	defaultOrigin geo.Coordinates,
	searchRadius int,
) IPlacesService {
	return &placesService{
		placesClient:  placesClient,
		sentimentRepo: sentimentRepo,
		log:           log,
		defaultOrigin: defaultOrigin,
		searchRadius:  searchRadius,
	}
}

// GetPlaces returns every nearby venue scored against the query context,
// sorted best first. Unlike the chat flow it does not truncate to three.
func (ps *placesService) GetPlaces(ctx context.Context, query *dto.PlacesQuery) (*dto.PlacesResponse, error) {
	origin := ps.defaultOrigin
	if query.Lat != nil && query.Lng != nil {
		origin = geo.Coordinates{Lat: *query.Lat, Lng: *query.Lng}
	}

	venues, err := ps.placesClient.NearbySearch(ctx, origin, ps.searchRadius)
	if err != nil {
		ps.log.Warn("places", "directory lookup failed, serving mock venues", map[string]interface{}{
			"error": err.Error(),
		})
		venues = ps.placesClient.MockVenues(origin)
	}

	matchCtx := ps.buildContext(query)

	items := make([]dto.PlaceDTO, len(venues))
	for i, venue := range venues {
		distance := geo.DistanceKm(origin, venue.Location)

		venueCtx := matchCtx
		venueCtx.DistanceKm = distance

		items[i] = dto.PlaceDTO{
			PlaceID:    venue.PlaceID,
			Name:       venue.Name,
			Vicinity:   venue.Vicinity,
			Rating:     venue.Rating,
			PriceLevel: venue.PriceLevel,
			PriceRange: geo.FormatPriceRange(venue.PriceLevel),
			Score:      match.Score(venue, venueCtx),
			DistanceKm: distance,
			Lat:        venue.Location.Lat,
			Lng:        venue.Location.Lng,
			Types:      venue.Types,
			Photos:     venue.PhotoURLs,
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	return &dto.PlacesResponse{Places: items}, nil
}

// buildContext starts from a neutral default and applies the query's
// overrides. A session token lets the caller reuse the mood inferred from
// their last chat message without passing it explicitly.
func (ps *placesService) buildContext(query *dto.PlacesQuery) match.Context {
	mood := constant.MoodNeutral
	preferences := map[string]string{}

	if query.SessionID != "" {
		if cached, ok := ps.sentimentRepo.Get(query.SessionID); ok {
			mood = cached.Sentiment
			for k, v := range cached.RawPreferences {
				preferences[k] = v
			}
		}
	}

	if query.Sentiment != "" && constant.IsValidMood(query.Sentiment) {
		mood = query.Sentiment
	}
	if query.Budget != "" {
		preferences[constant.PreferenceBudget] = query.Budget
	}
	if query.Vibe != "" {
		preferences[constant.PreferenceVibe] = query.Vibe
	}
	if query.SpecialNeeds != "" {
		preferences[constant.PreferenceSpecialNeeds] = query.SpecialNeeds
	}

	return match.Context{
		Mood:            mood,
		Preferences:     preferences,
		Hour:            time.Now().Hour(),
		SpecialOccasion: query.Occasion,
		Weather:         query.Weather,
	}
}
