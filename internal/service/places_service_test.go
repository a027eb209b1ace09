package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"matcha-match-be/internal/constant"
	"matcha-match-be/internal/dto"
	"matcha-match-be/internal/entity"
	"matcha-match-be/internal/pkg/logger"
	"matcha-match-be/internal/repository/memory"
	"matcha-match-be/pkg/geo"
	"matcha-match-be/pkg/places"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlacesService() (IPlacesService, *memory.SentimentCacheRepository) {
	cache := memory.NewSentimentCacheRepository()
	svc := NewPlacesService(
		places.NewClient("", "http://localhost:3000/api/ai/placeholder"),
		cache,
		logger.NewIsolatedLogger("logs/test_places.log"),
		geo.Coordinates{Lat: -33.8688, Lng: 151.2093},
		5000,
	)
	return svc, cache
}

func TestGetPlacesReturnsScoredSortedList(t *testing.T) {
	svc, _ := newTestPlacesService()

	res, err := svc.GetPlaces(context.Background(), &dto.PlacesQuery{})
	require.NoError(t, err)
	require.Len(t, res.Places, 3)

	for i := 1; i < len(res.Places); i++ {
		assert.GreaterOrEqual(t, res.Places[i-1].Score, res.Places[i].Score)
	}

	for _, p := range res.Places {
		assert.NotEmpty(t, p.PlaceID)
		assert.NotEmpty(t, p.PriceRange)
		assert.GreaterOrEqual(t, p.Score, 0)
		assert.LessOrEqual(t, p.Score, 200)
	}
}

func TestGetPlacesDegradesToMocksOnDirectoryFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := places.NewClient("real-key", "http://localhost:3000/api/ai/placeholder").WithBaseURL(upstream.URL)
	svc := NewPlacesService(
		client,
		memory.NewSentimentCacheRepository(),
		logger.NewIsolatedLogger("logs/test_places.log"),
		geo.Coordinates{Lat: -33.8688, Lng: 151.2093},
		5000,
	)

	// A failing directory never fails the request: the fixed venue list
	// takes its place.
	res, err := svc.GetPlaces(context.Background(), &dto.PlacesQuery{})
	require.NoError(t, err)
	require.Len(t, res.Places, 3)
	findPlace(t, res.Places, "Zen Matcha House")
}

func TestGetPlacesAppliesQueryOverrides(t *testing.T) {
	svc, _ := newTestPlacesService()

	neutral, err := svc.GetPlaces(context.Background(), &dto.PlacesQuery{})
	require.NoError(t, err)

	stressed, err := svc.GetPlaces(context.Background(), &dto.PlacesQuery{
		Sentiment: constant.MoodStressed,
	})
	require.NoError(t, err)

	// Zen Matcha House matches the calm-seeking keyword set, so a stressed
	// caller scores it strictly higher than a neutral one.
	zenNeutral := findPlace(t, neutral.Places, "Zen Matcha House")
	zenStressed := findPlace(t, stressed.Places, "Zen Matcha House")
	assert.Greater(t, zenStressed.Score, zenNeutral.Score)
}

func TestGetPlacesIgnoresInvalidSentimentOverride(t *testing.T) {
	svc, _ := newTestPlacesService()

	neutral, err := svc.GetPlaces(context.Background(), &dto.PlacesQuery{})
	require.NoError(t, err)

	bogus, err := svc.GetPlaces(context.Background(), &dto.PlacesQuery{
		Sentiment: "ecstatic",
	})
	require.NoError(t, err)

	for i := range neutral.Places {
		assert.Equal(t, neutral.Places[i].Score, bogus.Places[i].Score)
	}
}

func TestGetPlacesReusesCachedSessionMood(t *testing.T) {
	svc, cache := newTestPlacesService()

	cache.Save("session-abc", &entity.SentimentResult{
		Sentiment:  constant.MoodStressed,
		Confidence: 0.9,
		CreatedAt:  time.Now(),
	})

	neutral, err := svc.GetPlaces(context.Background(), &dto.PlacesQuery{})
	require.NoError(t, err)

	cached, err := svc.GetPlaces(context.Background(), &dto.PlacesQuery{
		SessionID: "session-abc",
	})
	require.NoError(t, err)

	zenNeutral := findPlace(t, neutral.Places, "Zen Matcha House")
	zenCached := findPlace(t, cached.Places, "Zen Matcha House")
	assert.Greater(t, zenCached.Score, zenNeutral.Score)
}

func findPlace(t *testing.T, items []dto.PlaceDTO, name string) dto.PlaceDTO {
	t.Helper()
	for _, p := range items {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("place %q not found", name)
	return dto.PlaceDTO{}
}
