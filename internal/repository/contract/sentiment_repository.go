package contract

import (
	"context"

	"matcha-match-be/internal/entity"
	"matcha-match-be/internal/repository/specification"
)

type SentimentRepository interface {
	Create(ctx context.Context, result *entity.SentimentResult) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SentimentResult, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SentimentResult, error)
}
