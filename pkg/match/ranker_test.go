package match

import (
	"strings"
	"testing"

	"matcha-match-be/internal/constant"
	"matcha-match-be/pkg/geo"
	"matcha-match-be/pkg/places"
)

var testOrigin = geo.Coordinates{Lat: -33.8688, Lng: 151.2093}

func nearbyVenue(name string, rating float64) places.Venue {
	return places.Venue{
		PlaceID:  "id-" + name,
		Name:     name,
		Rating:   rating,
		Location: geo.Coordinates{Lat: -33.8690, Lng: 151.2095},
		Types:    []string{"cafe"},
	}
}

func TestRankReturnsAtMostThree(t *testing.T) {
	candidates := []places.Venue{
		nearbyVenue("Matcha One", 4.9),
		nearbyVenue("Matcha Two", 4.7),
		nearbyVenue("Matcha Three", 4.3),
		nearbyVenue("Matcha Four", 3.9),
		nearbyVenue("Matcha Five", 3.1),
	}

	got := NewRanker().Rank(candidates, testOrigin, Context{Hour: 12})
	if len(got) != 3 {
		t.Fatalf("Rank returned %d items, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("results not sorted: score[%d]=%d > score[%d]=%d", i, got[i].Score, i-1, got[i-1].Score)
		}
	}
}

func TestRankStableTieBreak(t *testing.T) {
	// Identical venues apart from the id: identical scores, so input order
	// must be preserved.
	candidates := []places.Venue{
		nearbyVenue("Twin Cafe", 4.5),
		nearbyVenue("Twin Cafe", 4.5),
		nearbyVenue("Twin Cafe", 4.5),
	}
	candidates[0].PlaceID = "first"
	candidates[1].PlaceID = "second"
	candidates[2].PlaceID = "third"

	got := NewRanker().Rank(candidates, testOrigin, Context{})
	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if got[i].Venue.PlaceID != want {
			t.Errorf("position %d: got %q, want %q", i, got[i].Venue.PlaceID, want)
		}
	}
}

func TestRankEmptyCandidates(t *testing.T) {
	got := NewRanker().Rank(nil, testOrigin, Context{})
	if len(got) != 0 {
		t.Errorf("Rank(nil) returned %d items, want 0", len(got))
	}
}

func TestRankAttachesExplanations(t *testing.T) {
	candidates := []places.Venue{
		nearbyVenue("Zen Matcha House", 4.8),
		nearbyVenue("Green Leaf Cafe", 4.2),
	}

	got := NewRanker().Rank(candidates, testOrigin, Context{Mood: constant.MoodStressed})
	if len(got) != 2 {
		t.Fatalf("Rank returned %d items, want 2", len(got))
	}

	top := got[0].Explanation
	if top == "" {
		t.Fatal("top result has empty explanation")
	}
	if !strings.Contains(top, "unwind") {
		t.Errorf("stressed mood explanation = %q, want calm-seeking wording", top)
	}
	if !strings.Contains(top, "top pick") {
		t.Errorf("rank-1 explanation = %q, want top-pick closing", top)
	}
	if !strings.Contains(got[1].Explanation, "second") {
		t.Errorf("rank-2 explanation = %q, want second-choice closing", got[1].Explanation)
	}
}

func TestRankComputesDistance(t *testing.T) {
	far := nearbyVenue("Far Matcha", 4.5)
	far.Location = geo.Coordinates{Lat: -33.7970, Lng: 151.2855} // Manly, well beyond 2km

	got := NewRanker().Rank([]places.Venue{far}, testOrigin, Context{})
	if len(got) != 1 {
		t.Fatalf("Rank returned %d items, want 1", len(got))
	}
	if got[0].DistanceKm <= 2.0 {
		t.Errorf("DistanceKm = %v, want > 2.0 for Manly from the CBD", got[0].DistanceKm)
	}
	if !strings.Contains(got[0].Explanation, "worth the journey") {
		t.Errorf("explanation = %q, want far-distance wording", got[0].Explanation)
	}
}
