package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once created. Ordered by CreatedAt within its
// conversation. User messages may own one SentimentResult.
type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           string
	Content        string
	CreatedAt      time.Time
}
