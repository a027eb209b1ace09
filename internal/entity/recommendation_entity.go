package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is an append-only audit row linking a conversation to a
// venue that was recommended, with the sentiment context and explanation at
// the time. Never updated.
type Recommendation struct {
	Id               uuid.UUID
	ConversationId   uuid.UUID
	PlaceId          string
	PlaceName        string
	Reason           string
	SentimentContext string
	Confidence       float64
	CreatedAt        time.Time
}
