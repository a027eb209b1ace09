package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SentimentResult struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MessageId      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"` // 1:1 with user message
	Sentiment      string         `gorm:"type:varchar(20);not null"`
	Confidence     float64        `gorm:"not null;default:0"`
	RawPreferences datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (SentimentResult) TableName() string {
	return "sentiment_results"
}
