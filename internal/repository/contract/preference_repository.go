package contract

import (
	"context"

	"matcha-match-be/internal/entity"
	"matcha-match-be/internal/repository/specification"
)

type PreferenceRepository interface {
	// Upsert writes the preference for its (conversation, type) pair,
	// replacing any previous value.
	Upsert(ctx context.Context, preference *entity.Preference) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Preference, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Preference, error)
}
