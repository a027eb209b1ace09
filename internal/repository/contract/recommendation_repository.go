package contract

import (
	"context"

	"matcha-match-be/internal/entity"
	"matcha-match-be/internal/repository/specification"
)

type RecommendationRepository interface {
	Create(ctx context.Context, recommendation *entity.Recommendation) error
	CreateBatch(ctx context.Context, recommendations []*entity.Recommendation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recommendation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
