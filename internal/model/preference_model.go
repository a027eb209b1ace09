package model

import (
	"time"

	"github.com/google/uuid"
)

type Preference struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_pref_type"`
	Type           string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_conversation_pref_type"`
	Value          string    `gorm:"type:varchar(100);not null"`
	Confidence     float64   `gorm:"not null;default:0"`
	ExtractedAt    time.Time `gorm:"not null"`
}

func (Preference) TableName() string {
	return "preferences"
}
