package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is one chat thread, keyed by an opaque session token so
// anonymous visitors can keep a history across requests.
type Conversation struct {
	Id           uuid.UUID
	SessionToken string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
