package mapper

import (
	"encoding/json"
	"time"

	"matcha-match-be/internal/entity"
	"matcha-match-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Conversation Mappers

func (m *ChatMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Conversation{
		Id:           c.Id,
		SessionToken: c.SessionToken,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ChatMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Conversation{
		Id:           c.Id,
		SessionToken: c.SessionToken,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	return &entity.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           msg.Role,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	return &model.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           msg.Role,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
	}
}

// Sentiment Mappers

func (m *ChatMapper) SentimentResultToEntity(s *model.SentimentResult) *entity.SentimentResult {
	if s == nil {
		return nil
	}

	raw := map[string]string{}
	if len(s.RawPreferences) > 0 {
		// Ignore malformed rows rather than failing the read path.
		_ = json.Unmarshal(s.RawPreferences, &raw)
	}

	return &entity.SentimentResult{
		Id:             s.Id,
		MessageId:      s.MessageId,
		Sentiment:      s.Sentiment,
		Confidence:     s.Confidence,
		RawPreferences: raw,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *ChatMapper) SentimentResultToModel(s *entity.SentimentResult) *model.SentimentResult {
	if s == nil {
		return nil
	}

	var raw datatypes.JSON
	if len(s.RawPreferences) > 0 {
		if b, err := json.Marshal(s.RawPreferences); err == nil {
			raw = b
		}
	}

	return &model.SentimentResult{
		Id:             s.Id,
		MessageId:      s.MessageId,
		Sentiment:      s.Sentiment,
		Confidence:     s.Confidence,
		RawPreferences: raw,
		CreatedAt:      s.CreatedAt,
	}
}

// Preference Mappers

func (m *ChatMapper) PreferenceToEntity(p *model.Preference) *entity.Preference {
	if p == nil {
		return nil
	}

	return &entity.Preference{
		Id:             p.Id,
		ConversationId: p.ConversationId,
		Type:           p.Type,
		Value:          p.Value,
		Confidence:     p.Confidence,
		ExtractedAt:    p.ExtractedAt,
	}
}

func (m *ChatMapper) PreferenceToModel(p *entity.Preference) *model.Preference {
	if p == nil {
		return nil
	}

	return &model.Preference{
		Id:             p.Id,
		ConversationId: p.ConversationId,
		Type:           p.Type,
		Value:          p.Value,
		Confidence:     p.Confidence,
		ExtractedAt:    p.ExtractedAt,
	}
}

// Recommendation Mappers

func (m *ChatMapper) RecommendationToEntity(r *model.Recommendation) *entity.Recommendation {
	if r == nil {
		return nil
	}

	return &entity.Recommendation{
		Id:               r.Id,
		ConversationId:   r.ConversationId,
		PlaceId:          r.PlaceId,
		PlaceName:        r.PlaceName,
		Reason:           r.Reason,
		SentimentContext: r.SentimentContext,
		Confidence:       r.Confidence,
		CreatedAt:        r.CreatedAt,
	}
}

func (m *ChatMapper) RecommendationToModel(r *entity.Recommendation) *model.Recommendation {
	if r == nil {
		return nil
	}

	return &model.Recommendation{
		Id:               r.Id,
		ConversationId:   r.ConversationId,
		PlaceId:          r.PlaceId,
		PlaceName:        r.PlaceName,
		Reason:           r.Reason,
		SentimentContext: r.SentimentContext,
		Confidence:       r.Confidence,
		CreatedAt:        r.CreatedAt,
	}
}
