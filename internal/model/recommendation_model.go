package model

import (
	"time"

	"github.com/google/uuid"
)

type Recommendation struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId   uuid.UUID `gorm:"type:uuid;not null;index"`
	PlaceId          string    `gorm:"type:varchar(100);not null"`
	PlaceName        string    `gorm:"type:varchar(200);not null"`
	Reason           string    `gorm:"type:text;not null"`
	SentimentContext string    `gorm:"type:varchar(50);not null"`
	Confidence       float64   `gorm:"not null;default:0"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
