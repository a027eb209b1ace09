package match

import (
	"fmt"
	"strings"
)

// explain assembles the recommendation reason shown to the user: a mood
// sentence, a rating/specialty sentence, a distance sentence and a
// rank-dependent closing line.
func explain(sv ScoredVenue, mood string, rank int) string {
	parts := []string{
		moodSentence(mood),
		ratingSentence(sv),
		distanceSentence(sv.DistanceKm),
		closingSentence(rank),
	}
	return strings.Join(parts, " ")
}

func moodSentence(mood string) string {
	switch {
	case containsMood(calmSeekingMoods, mood):
		return "This peaceful spot should help you unwind."
	case containsMood(energySeekingMoods, mood):
		return "This lively spot matches your energy."
	case containsMood(focusSeekingMoods, mood):
		return "This is a solid place to settle in and get things done."
	default:
		return "This café is a great all-round match for you."
	}
}

func ratingSentence(sv ScoredVenue) string {
	isMatcha := strings.Contains(strings.ToLower(sv.Venue.Name), "matcha")
	switch {
	case sv.Venue.Rating >= 4.5 && isMatcha:
		return fmt.Sprintf("It's a matcha specialist locals rate %.1f stars.", sv.Venue.Rating)
	case sv.Venue.Rating >= 4.5:
		return fmt.Sprintf("Locals rate it highly at %.1f stars.", sv.Venue.Rating)
	case isMatcha:
		return "It specialises in matcha."
	case sv.Venue.Rating > 0:
		return fmt.Sprintf("It holds a solid %.1f-star rating.", sv.Venue.Rating)
	default:
		return "It's a bit of a hidden gem."
	}
}

func distanceSentence(distanceKm float64) string {
	switch {
	case distanceKm <= 1.0:
		return fmt.Sprintf("At %.1f km away it's extremely convenient.", distanceKm)
	case distanceKm <= 2.0:
		return fmt.Sprintf("At %.1f km away it's easily accessible.", distanceKm)
	default:
		return fmt.Sprintf("It's %.1f km away, but worth the journey.", distanceKm)
	}
}

func closingSentence(rank int) string {
	switch rank {
	case 0:
		return "It's our top pick for you."
	case 1:
		return "A very close second choice."
	default:
		return "A great backup option to keep in mind."
	}
}
