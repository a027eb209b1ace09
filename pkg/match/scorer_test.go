package match

import (
	"testing"

	"matcha-match-be/internal/constant"
	"matcha-match-be/pkg/geo"
	"matcha-match-be/pkg/places"
)

func level(n int) *int { return &n }

func venue(name string, rating float64, priceLevel *int, types ...string) places.Venue {
	return places.Venue{
		PlaceID:    "test-" + name,
		Name:       name,
		Rating:     rating,
		PriceLevel: priceLevel,
		Types:      types,
		Location:   geo.Coordinates{Lat: -33.8748, Lng: 151.1987},
	}
}

func TestScoreDeterministicAndBounded(t *testing.T) {
	v := venue("Zen Matcha House", 4.8, level(2), "cafe", "outdoor_seating")
	ctx := Context{
		Mood:            constant.MoodStressed,
		Preferences:     map[string]string{"budget": "medium", "vibe": "quiet", "special_needs": "outdoor_seating"},
		Hour:            14,
		DistanceKm:      0.3,
		SpecialOccasion: "date",
		Weather:         "sunny",
	}

	first := Score(v, ctx)
	for i := 0; i < 10; i++ {
		if got := Score(v, ctx); got != first {
			t.Fatalf("Score not deterministic: %d then %d", first, got)
		}
	}
	if first < 0 || first > MaxScore {
		t.Errorf("Score = %d, want within [0, %d]", first, MaxScore)
	}
}

func TestScoreZeroValueInputs(t *testing.T) {
	// Malformed/missing fields must contribute neutrally, never panic.
	got := Score(places.Venue{}, Context{})
	if got < 0 || got > MaxScore {
		t.Errorf("Score of empty venue = %d, want within bounds", got)
	}
}

func TestRatingSteps(t *testing.T) {
	tests := []struct {
		rating float64
		want   int
	}{
		{4.9, 30},
		{4.8, 30},
		{4.6, 25},
		{4.2, 20},
		{3.7, 15},
		{2.0, 10},
		{0, 0},
	}
	for _, tt := range tests {
		v := venue("plain", tt.rating, nil)
		// Distance beyond all bands still scores 2, so subtract it out.
		got := Score(v, Context{DistanceKm: 100}) - 2
		if got != tt.want {
			t.Errorf("rating %.1f: score = %d, want %d", tt.rating, got, tt.want)
		}
	}
}

func TestMoodFit(t *testing.T) {
	tests := []struct {
		name string
		mood string
		v    places.Venue
		want int
	}{
		{"calm keyword and high rating", constant.MoodStressed, venue("Zen Tranquil Room", 4.6, nil), 30},
		{"calm category only", constant.MoodCalm, venue("Plain Place", 0, nil, "garden"), 15},
		{"energy keyword and type", constant.MoodSocial, venue("Rooftop Social", 0, nil, "bar"), 30},
		{"energy price band", constant.MoodHappy, venue("Plain Place", 0, level(3)), 10},
		{"focus keyword and cafe", constant.MoodFocused, venue("Study Corner", 0, nil, "cafe"), 30},
		{"unbucketed mood", constant.MoodAngry, venue("Zen Tranquil Room", 4.6, nil), 0},
		{"neutral mood", constant.MoodNeutral, venue("Rooftop Social", 0, nil, "bar"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := moodScore(tt.v, tt.mood); got != tt.want {
				t.Errorf("moodScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimeBands(t *testing.T) {
	tests := []struct {
		name string
		hour int
		v    places.Venue
		want int
	}{
		{"morning coffee", 8, venue("x", 0, nil, "coffee"), 20},
		{"hour 11 is still morning", 11, venue("x", 0, nil, "coffee"), 20},
		{"hour 16 is still lunch", 16, venue("x", 0, nil, "cafe"), 20},
		{"hour 21 is still evening", 21, venue("x", 0, nil, "rooftop"), 15},
		{"morning bakery stacks and clamps", 9, venue("x", 0, nil, "breakfast", "bakery"), 20},
		{"lunch cafe", 13, venue("x", 0, nil, "cafe"), 20},
		{"evening bar", 19, venue("x", 0, nil, "bar"), 20},
		{"night", 23, venue("x", 0, nil, "nightclub"), 20},
		{"small hours", 1, venue("x", 0, nil, "bar"), 20},
		{"no fitting tag", 13, venue("x", 0, nil, "bar"), 0},
		{"dead hours", 4, venue("x", 0, nil, "cafe"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeScore(tt.v, tt.hour); got != tt.want {
				t.Errorf("timeScore(hour=%d) = %d, want %d", tt.hour, got, tt.want)
			}
		})
	}
}

func TestBudgetAlignment(t *testing.T) {
	tests := []struct {
		budget string
		price  *int
		want   int
	}{
		{"low", level(1), 20},
		{"low", level(2), 0},
		{"medium", level(2), 20},
		{"medium", level(3), 0},
		{"high", level(3), 20},
		{"high", level(1), 0},
		{"low", nil, 0},
	}
	for _, tt := range tests {
		v := venue("plain", 0, tt.price)
		got := preferenceScore(v, map[string]string{"budget": tt.budget})
		if got != tt.want {
			t.Errorf("budget=%s price=%v: score = %d, want %d", tt.budget, tt.price, got, tt.want)
		}
	}
}

func TestSpecialNeeds(t *testing.T) {
	v := venue("plain", 0, nil, "wifi", "outdoor_seating", "wheelchair_accessible")
	got := preferenceScore(v, map[string]string{"special_needs": "wifi,outdoor_seating,accessible"})
	// 15+15+15 clamps to the 20-point factor ceiling.
	if got != 20 {
		t.Errorf("preferenceScore = %d, want clamped 20", got)
	}
}

func TestTopicalRelevance(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"Matcha House", 15},
		{"Green Tea Lounge", 5},
		{"Japanese Garden Cafe", 5},
		{"Corner Espresso", 0},
	}
	for _, tt := range tests {
		if got := topicalScore(venue(tt.name, 0, nil)); got != tt.want {
			t.Errorf("topicalScore(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDistanceMonotonicity(t *testing.T) {
	distances := []float64{0.2, 0.5, 0.8, 1.0, 1.5, 2.0, 2.5, 3.0, 5.0, 20.0}
	prev := distanceScore(distances[0])
	for _, d := range distances[1:] {
		cur := distanceScore(d)
		if cur > prev {
			t.Errorf("distanceScore(%v) = %d exceeds score at shorter distance %d", d, cur, prev)
		}
		prev = cur
	}
}

func TestOccasionAndWeather(t *testing.T) {
	romantic := venue("x", 0, nil, "romantic", "indoor")
	if got := occasionScore(romantic, "date"); got != 10 {
		t.Errorf("occasionScore(date) = %d, want 10", got)
	}
	if got := occasionScore(romantic, "birthday"); got != 0 {
		t.Errorf("occasionScore(birthday) = %d, want 0", got)
	}
	if got := weatherScore(romantic, "rainy"); got != 5 {
		t.Errorf("weatherScore(rainy) = %d, want 5", got)
	}
	if got := weatherScore(romantic, "sunny"); got != 0 {
		t.Errorf("weatherScore(sunny) = %d, want 0", got)
	}
}
