package unitofwork

import (
	"context"

	"matcha-match-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	SentimentRepository() contract.SentimentRepository
	PreferenceRepository() contract.PreferenceRepository
	RecommendationRepository() contract.RecommendationRepository
}
