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
	"gorm.io/gorm/clause"
)

type PreferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewPreferenceRepository(db *gorm.DB) contract.PreferenceRepository {
	return &PreferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *PreferenceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PreferenceRepositoryImpl) Upsert(ctx context.Context, preference *entity.Preference) error {
	m := r.mapper.PreferenceToModel(preference)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "conversation_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"value", "confidence", "extracted_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*preference = *r.mapper.PreferenceToEntity(m)
	return nil
}

func (r *PreferenceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Preference, error) {
	var m model.Preference
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PreferenceToEntity(&m), nil
}

func (r *PreferenceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Preference, error) {
	var models []*model.Preference
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Preference, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PreferenceToEntity(m)
	}
	return entities, nil
}
