package entity

import (
	"time"

	"github.com/google/uuid"
)

// SentimentResult is the extraction outcome for one user message. Created
// once, never mutated. RawPreferences keeps the pre-normalization values as
// the extractor produced them.
type SentimentResult struct {
	Id             uuid.UUID
	MessageId      uuid.UUID
	Sentiment      string
	Confidence     float64
	RawPreferences map[string]string
	CreatedAt      time.Time
}
