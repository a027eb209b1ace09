// Package match scores and ranks candidate venues against the user's mood,
// preferences and situation.
package match

import (
	"strings"

	"matcha-match-be/internal/constant"
	"matcha-match-be/pkg/places"
)

// Score bounds. Each factor is clamped on its own before the total is
// clamped to [0, MaxScore].
const (
	MaxScore = 200

	maxRatingScore     = 30
	maxMoodScore       = 30
	maxTimeScore       = 20
	maxPreferenceScore = 20
	maxTopicalScore    = 15
	maxDistanceScore   = 15
	maxOccasionScore   = 10
	maxWeatherScore    = 5
)

// Context carries everything about the user's situation that influences a
// venue's score. Zero values contribute nothing; scoring never fails.
type Context struct {
	Mood            string
	Preferences     map[string]string
	Hour            int
	DistanceKm      float64
	SpecialOccasion string
	Weather         string
}

// Mood buckets. Moods outside these three groups (sad, angry, neutral)
// contribute no mood-fit points.
var (
	calmSeekingMoods   = []string{constant.MoodStressed, constant.MoodCalm}
	energySeekingMoods = []string{constant.MoodExcited, constant.MoodHappy, constant.MoodSocial}
	focusSeekingMoods  = []string{constant.MoodFocused}

	calmKeywords   = []string{"zen", "quiet", "peaceful", "calm", "serene", "tranquil"}
	energyKeywords = []string{"social", "bar", "rooftop", "trendy", "vibrant", "lively"}
	focusKeywords  = []string{"study", "work", "focus", "quiet", "concentration", "library"}

	// Topical terms for the matcha domain; "matcha" itself earns an extra bonus.
	topicalKeywords = []string{"matcha", "green tea", "tea house", "tea room", "japanese", "asian"}
)

// Score computes the bounded match score for one venue. It is pure and
// deterministic: the same venue and context always produce the same integer.
func Score(venue places.Venue, ctx Context) int {
	score := ratingScore(venue)
	score += moodScore(venue, ctx.Mood)
	score += timeScore(venue, ctx.Hour)
	score += preferenceScore(venue, ctx.Preferences)
	score += topicalScore(venue)
	score += distanceScore(ctx.DistanceKm)
	score += occasionScore(venue, ctx.SpecialOccasion)
	score += weatherScore(venue, ctx.Weather)

	return clamp(score, 0, MaxScore)
}

func ratingScore(venue places.Venue) int {
	r := venue.Rating
	switch {
	case r >= 4.8:
		return 30
	case r >= 4.5:
		return 25
	case r >= 4.0:
		return 20
	case r >= 3.5:
		return 15
	case r > 0:
		return 10
	default:
		return 0
	}
}

func moodScore(venue places.Venue, mood string) int {
	name := strings.ToLower(venue.Name)
	score := 0

	switch {
	case containsMood(calmSeekingMoods, mood):
		if nameContainsAny(name, calmKeywords) {
			score += 20
		}
		if venue.HasType("park") || venue.HasType("garden") {
			score += 15
		}
		if venue.Rating >= 4.5 { // well-reviewed peaceful spots
			score += 10
		}
	case containsMood(energySeekingMoods, mood):
		if nameContainsAny(name, energyKeywords) {
			score += 20
		}
		if venue.HasType("bar") || venue.HasType("nightclub") {
			score += 15
		}
		if venue.PriceLevel != nil && (*venue.PriceLevel == 2 || *venue.PriceLevel == 3) {
			score += 10
		}
	case containsMood(focusSeekingMoods, mood):
		if nameContainsAny(name, focusKeywords) {
			score += 20
		}
		if venue.HasType("library") || venue.HasType("cafe") {
			score += 15
		}
	}

	return clamp(score, 0, maxMoodScore)
}

// timeScore rewards venue categories appropriate to four fixed hour bands.
func timeScore(venue places.Venue, hour int) int {
	score := 0
	switch {
	case hour >= 6 && hour <= 11: // morning
		if venue.HasType("breakfast") || venue.HasType("coffee") {
			score += 20
		}
		if venue.HasType("bakery") {
			score += 15
		}
	case hour >= 11 && hour <= 16: // lunch
		if venue.HasType("restaurant") || venue.HasType("cafe") {
			score += 20
		}
		if venue.HasType("lunch") {
			score += 15
		}
	case hour >= 16 && hour <= 21: // afternoon into evening
		if venue.HasType("dinner") || venue.HasType("bar") {
			score += 20
		}
		if venue.HasType("rooftop") {
			score += 15
		}
	case hour >= 21 || hour <= 2: // night
		if venue.HasType("bar") || venue.HasType("nightclub") {
			score += 20
		}
		if venue.HasType("late_night") {
			score += 15
		}
	}
	return clamp(score, 0, maxTimeScore)
}

func preferenceScore(venue places.Venue, prefs map[string]string) int {
	if prefs == nil {
		return 0
	}
	name := strings.ToLower(venue.Name)
	score := 0

	budget := prefs[constant.PreferenceBudget]
	if venue.PriceLevel != nil {
		level := *venue.PriceLevel
		switch {
		case budget == "low" && level <= 1:
			score += 20
		case budget == "medium" && level <= 2:
			score += 20
		case budget == "high" && level >= 3:
			score += 20
		}
	}

	switch prefs[constant.PreferenceVibe] {
	case "cozy":
		if nameContainsAny(name, []string{"cozy", "warm", "intimate"}) {
			score += 20
		}
	case "trendy":
		if nameContainsAny(name, []string{"trendy", "modern", "hip"}) {
			score += 20
		}
	case "quiet":
		if nameContainsAny(name, []string{"quiet", "peaceful", "serene"}) {
			score += 20
		}
	}

	needs := prefs[constant.PreferenceSpecialNeeds]
	if strings.Contains(needs, "wifi") && venue.HasType("wifi") {
		score += 15
	}
	if strings.Contains(needs, "outdoor") && venue.HasType("outdoor_seating") {
		score += 15
	}
	if strings.Contains(needs, "accessib") && venue.HasType("wheelchair_accessible") {
		score += 15
	}

	return clamp(score, 0, maxPreferenceScore)
}

func topicalScore(venue places.Venue) int {
	name := strings.ToLower(venue.Name)
	score := 0
	for _, kw := range topicalKeywords {
		if strings.Contains(name, kw) {
			score += 5
			break
		}
	}
	if strings.Contains(name, "matcha") {
		score += 10
	}
	return clamp(score, 0, maxTopicalScore)
}

func distanceScore(distanceKm float64) int {
	switch {
	case distanceKm <= 0.5:
		return 15
	case distanceKm <= 1.0:
		return 12
	case distanceKm <= 2.0:
		return 8
	case distanceKm <= 3.0:
		return 5
	default:
		return 2
	}
}

func occasionScore(venue places.Venue, occasion string) int {
	switch occasion {
	case "date":
		if venue.HasType("romantic") {
			return 10
		}
	case "birthday":
		if venue.HasType("celebration") {
			return 10
		}
	case "meeting":
		if venue.HasType("quiet") {
			return 10
		}
	}
	return 0
}

func weatherScore(venue places.Venue, weather string) int {
	switch weather {
	case "rainy":
		if venue.HasType("indoor") {
			return 5
		}
	case "sunny":
		if venue.HasType("outdoor_seating") {
			return 5
		}
	}
	return 0
}

func nameContainsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

func containsMood(moods []string, mood string) bool {
	for _, m := range moods {
		if m == mood {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
