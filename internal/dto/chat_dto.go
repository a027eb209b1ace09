package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	Message   string   `json:"message" validate:"required"`
	SessionID string   `json:"session_id,omitempty"`
	Lat       *float64 `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lng       *float64 `json:"lng,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

type SentimentDTO struct {
	Mood        string            `json:"mood"`
	Confidence  float64           `json:"confidence"`
	Preferences map[string]string `json:"preferences"`
}

type RecommendationDTO struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Vicinity   string   `json:"vicinity"`
	Rating     float64  `json:"rating"`
	PriceRange string   `json:"price_range"`
	Score      int      `json:"score"`
	DistanceKm float64  `json:"distance_km"`
	Photos     []string `json:"photos"`
	Reason     string   `json:"reason"`
}

type ChatResponse struct {
	Message         string              `json:"message"`
	Recommendations []RecommendationDTO `json:"recommendations"`
	Sentiment       SentimentDTO        `json:"sentiment"`
	SessionID       string              `json:"session_id"`
}

type ConversationMessageDTO struct {
	Id        uuid.UUID     `json:"id"`
	Role      string        `json:"role"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	Sentiment *SentimentDTO `json:"sentiment,omitempty"`
}

type ConversationHistoryResponse struct {
	SessionID string                   `json:"session_id"`
	Messages  []ConversationMessageDTO `json:"messages"`
}

type PreferenceValueDTO struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

type PreferencesResponse struct {
	SessionID   string                        `json:"session_id"`
	Preferences map[string]PreferenceValueDTO `json:"preferences"`
}
