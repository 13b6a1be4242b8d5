package profile

import (
	"context"

	"rhea-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ProfileRepository interface {
		GetByUserID(ctx context.Context, userID string) (*entities.StyleProfile, error)
		// Upsert writes the analysis columns keyed on user_id. pro_credits is never touched.
		Upsert(ctx context.Context, profile *entities.StyleProfile) error
	}

	profileRepository struct {
		db *gorm.DB
	}
)

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*entities.StyleProfile, error) {
	var profile entities.StyleProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *entities.StyleProfile) error {
	return r.db.WithContext(ctx).
		Omit("ProCredits").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"face_shape",
				"skin_undertone",
				"current_hairstyle",
				"preferences",
				"updated_at",
			}),
		}).
		Create(profile).Error
}
