package match

import (
	"sort"

	"matcha-match-be/pkg/geo"
	"matcha-match-be/pkg/places"
)

// topN is how many recommendations a ranking produces at most.
const topN = 3

// ScoredVenue pairs a candidate with its computed score, its distance from
// the search origin and a human-readable explanation. Transient: it lives
// only for the duration of one recommendation request.
type ScoredVenue struct {
	Venue       places.Venue
	Score       int
	DistanceKm  float64
	Explanation string
}

// Ranker orders candidates by match score.
type Ranker struct{}

func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank scores every candidate against the context, sorts descending and
// returns at most three venues with explanations attached. Ties keep the
// candidate order the directory returned them in. An empty or nil candidate
// list yields an empty result, never an error.
func (r *Ranker) Rank(candidates []places.Venue, origin geo.Coordinates, ctx Context) []ScoredVenue {
	scored := make([]ScoredVenue, 0, len(candidates))
	for _, venue := range candidates {
		distance := geo.DistanceKm(origin, venue.Location)

		venueCtx := ctx
		venueCtx.DistanceKm = distance

		scored = append(scored, ScoredVenue{
			Venue:      venue,
			Score:      Score(venue, venueCtx),
			DistanceKm: distance,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}

	for i := range scored {
		scored[i].Explanation = explain(scored[i], ctx.Mood, i)
	}

	return scored
}
