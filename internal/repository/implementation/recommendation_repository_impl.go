package implementation

import (
	"context"

	"matcha-match-be/internal/entity"
	"matcha-match-be/internal/mapper"
	"matcha-match-be/internal/model"
	"matcha-match-be/internal/repository/contract"
	"matcha-match-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RecommendationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewRecommendationRepository(db *gorm.DB) contract.RecommendationRepository {
	return &RecommendationRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *RecommendationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecommendationRepositoryImpl) Create(ctx context.Context, recommendation *entity.Recommendation) error {
	m := r.mapper.RecommendationToModel(recommendation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*recommendation = *r.mapper.RecommendationToEntity(m)
	return nil
}

func (r *RecommendationRepositoryImpl) CreateBatch(ctx context.Context, recommendations []*entity.Recommendation) error {
	if len(recommendations) == 0 {
		return nil
	}
	models := make([]*model.Recommendation, len(recommendations))
	for i, rec := range recommendations {
		models[i] = r.mapper.RecommendationToModel(rec)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*recommendations[i] = *r.mapper.RecommendationToEntity(m)
	}
	return nil
}

func (r *RecommendationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recommendation, error) {
	var models []*model.Recommendation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Recommendation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RecommendationToEntity(m)
	}
	return entities, nil
}

func (r *RecommendationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Recommendation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
