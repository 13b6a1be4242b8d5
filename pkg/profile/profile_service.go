package profile

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rhea-backend/domain"
	"rhea-backend/entities"
	"rhea-backend/internal/utils"
	"rhea-backend/pkg/analysis"
	"rhea-backend/pkg/events"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	ProfileService interface {
		AnalyzeFace(ctx context.Context, userID string, upload *utils.Upload) (*domain.AnalyzeFaceResponse, error)
		GetProfile(ctx context.Context, userID string) (*domain.StyleProfileResponse, error)
	}

	profileService struct {
		profileRepository ProfileRepository
		classifier        analysis.Classifier
		publisher         events.Publisher
	}
)

func NewProfileService(profileRepository ProfileRepository, classifier analysis.Classifier, publisher events.Publisher) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		classifier:        classifier,
		publisher:         publisher,
	}
}

func (s *profileService) AnalyzeFace(ctx context.Context, userID string, upload *utils.Upload) (*domain.AnalyzeFaceResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if err := utils.ValidateImage(upload); err != nil {
		return nil, err
	}

	result, err := s.classifier.Classify(upload.Data)
	if err != nil {
		return nil, err
	}

	prefs, err := json.Marshal(map[string]any{
		"last_analysis": result.AnalysisDetails,
		"confidence":    result.Confidence,
	})
	if err != nil {
		return nil, err
	}

	profile := &entities.StyleProfile{
		UserID:           uid,
		FaceShape:        result.FaceShape,
		SkinUndertone:    result.SkinUndertone,
		CurrentHairstyle: result.RecommendedStyle,
		Preferences:      datatypes.JSON(prefs),
	}
	if err := s.profileRepository.Upsert(ctx, profile); err != nil {
		log.Errorw("style profile upsert failed", "user_id", userID, "error", err)
		return nil, errors.Join(domain.ErrUpstreamFailure, err)
	}

	events.PublishAsync(s.publisher, events.NewEvent(events.TypeAnalysisCompleted, userID, map[string]any{
		"face_shape":     result.FaceShape,
		"skin_undertone": result.SkinUndertone,
		"image_hash":     result.AnalysisDetails.ImageHash,
	}))

	return &domain.AnalyzeFaceResponse{
		AnalysisResult: result,
		SessionUpdated: true,
	}, nil
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.StyleProfileResponse, error) {
	profile, err := s.profileRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	prefs := map[string]any{}
	if len(profile.Preferences) > 0 {
		if err := json.Unmarshal(profile.Preferences, &prefs); err != nil {
			return nil, err
		}
	}

	return &domain.StyleProfileResponse{
		ID:               profile.ID.String(),
		UserID:           profile.UserID.String(),
		FaceShape:        profile.FaceShape,
		SkinUndertone:    profile.SkinUndertone,
		CurrentHairstyle: profile.CurrentHairstyle,
		Preferences:      prefs,
		ProCredits:       profile.ProCredits,
		CreatedAt:        profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        profile.UpdatedAt.Format(time.RFC3339),
	}, nil
}
