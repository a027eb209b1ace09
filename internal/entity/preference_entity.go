package entity

import (
	"time"

	"github.com/google/uuid"
)

// Preference is the latest extracted value of one type for a conversation.
// At most one live row exists per (conversation, type); a newer extraction
// overwrites the old value.
type Preference struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Type           string
	Value          string
	Confidence     float64
	ExtractedAt    time.Time
}
