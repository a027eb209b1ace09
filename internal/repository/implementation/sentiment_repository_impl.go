package implementation

import (
	"context"
	"errors"

	"matcha-match-be/internal/entity"
	"matcha-match-be/internal/mapper"
	"matcha-match-be/internal/model"
	"matcha-match-be/internal/repository/contract"
	"matcha-match-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SentimentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewSentimentRepository(db *gorm.DB) contract.SentimentRepository {
	return &SentimentRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *SentimentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SentimentRepositoryImpl) Create(ctx context.Context, result *entity.SentimentResult) error {
	m := r.mapper.SentimentResultToModel(result)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*result = *r.mapper.SentimentResultToEntity(m)
	return nil
}

func (r *SentimentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SentimentResult, error) {
	var m model.SentimentResult
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SentimentResultToEntity(&m), nil
}

func (r *SentimentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SentimentResult, error) {
	var models []*model.SentimentResult
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SentimentResult, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SentimentResultToEntity(m)
	}
	return entities, nil
}
