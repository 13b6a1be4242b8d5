package credit

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"rhea-backend/domain"
	"rhea-backend/internal/utils"
	"rhea-backend/internal/utils/lock"
	"rhea-backend/pkg/events"
	"rhea-backend/pkg/profile"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

const (
	generationLockTTL = 2 * time.Minute
	generationTimeout = 90 * time.Second

	fillEmptyResponse = 200
	fillProviderError = 220
)

type (
	ImageGenerator interface {
		GenerateImage(ctx context.Context, prompt string, image []byte, mimeType string) ([]byte, error)
		Model() string
	}

	OutcomeKind string

	// Outcome is the result of one provider attempt. Placeholder outcomes
	// still carry an image.
	Outcome struct {
		Kind   OutcomeKind
		Reason string
		Image  []byte
	}

	CreditService interface {
		RequestGeneration(ctx context.Context, userID string, req domain.GenerateLookRequest, upload *utils.Upload) (*domain.GenerateLookResponse, error)
		GetCredits(ctx context.Context, userID string) (*domain.CreditsResponse, error)
		GetCreditHistory(ctx context.Context, userID string, page, limit int) ([]*domain.CreditTransaction, int64, error)
	}

	creditService struct {
		creditRepository  CreditRepository
		profileRepository profile.ProfileRepository
		generator         ImageGenerator
		locker            lock.Locker
		publisher         events.Publisher
	}
)

const (
	OutcomeReal        OutcomeKind = "real"
	OutcomePlaceholder OutcomeKind = "placeholder"
)

func NewCreditService(
	creditRepository CreditRepository,
	profileRepository profile.ProfileRepository,
	generator ImageGenerator,
	locker lock.Locker,
	publisher events.Publisher,
) CreditService {
	return &creditService{
		creditRepository:  creditRepository,
		profileRepository: profileRepository,
		generator:         generator,
		locker:            locker,
		publisher:         publisher,
	}
}

func (s *creditService) RequestGeneration(ctx context.Context, userID string, req domain.GenerateLookRequest, upload *utils.Upload) (*domain.GenerateLookResponse, error) {
	release, err := s.locker.Acquire(ctx, "generation:"+userID, generationLockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, domain.ErrGenerationInProgress
		}
		log.Warnw("generation lock unavailable, continuing unlocked", "user_id", userID, "error", err)
		release = func(context.Context) {}
	}
	defer release(context.Background())

	styleProfile, err := s.profileRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPreconditionFailed, domain.MessageAnalysisRequired)
		}
		return nil, errors.Join(domain.ErrUpstreamFailure, err)
	}

	if styleProfile.ProCredits < domain.CREDIT_COST {
		return nil, &domain.InsufficientCreditsError{Current: styleProfile.ProCredits, Required: domain.CREDIT_COST}
	}

	if err := utils.ValidateImage(upload); err != nil {
		return nil, err
	}

	hairstyle := req.Hairstyle
	if hairstyle == "" {
		hairstyle = styleProfile.CurrentHairstyle
	}
	if hairstyle == "" {
		hairstyle = domain.DEFAULT_HAIRSTYLE
	}

	prompt := BuildPrompt(hairstyle, req.OutfitDescription, styleProfile.FaceShape, styleProfile.SkinUndertone)
	outcome := s.attempt(ctx, prompt, upload)

	mode := domain.GenerationModeReal
	if outcome.Kind == OutcomePlaceholder {
		mode = domain.GenerationModeMock
	}

	remaining, err := s.creditRepository.Debit(ctx, userID, domain.CREDIT_COST, mode, "Look generation: "+hairstyle)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCredits) {
			log.Warnw("credits spent concurrently, discarding generated image", "user_id", userID)
			return nil, err
		}
		log.Errorw("credit debit failed", "user_id", userID, "error", err)
		return nil, errors.Join(domain.ErrUpstreamFailure, err)
	}
	log.Infow("credits debited", "user_id", userID, "mode", mode, "remaining", remaining)

	events.PublishAsync(s.publisher, events.NewEvent(events.TypeLookGenerated, userID, map[string]any{
		"mode":              mode,
		"hairstyle":         hairstyle,
		"credits_remaining": remaining,
	}))

	metadata := domain.GenerationMetadata{
		Hairstyle:    hairstyle,
		Mode:         mode,
		PromptLength: utf8.RuneCountInString(prompt),
	}
	if req.OutfitDescription != "" {
		outfit := req.OutfitDescription
		metadata.Outfit = &outfit
	}
	if outcome.Kind == OutcomeReal {
		metadata.Model = s.generator.Model()
	} else {
		metadata.Reason = outcome.Reason
		metadata.Note = domain.MessagePlaceholderNote
	}

	return &domain.GenerateLookResponse{
		ImageBase64:      base64.StdEncoding.EncodeToString(outcome.Image),
		ImageURL:         nil,
		CreditsRemaining: remaining,
		CreditsUsed:      domain.CREDIT_COST,
		Metadata:         metadata,
	}, nil
}

// attempt never fails: provider errors and unusable output become placeholders.
func (s *creditService) attempt(ctx context.Context, prompt string, upload *utils.Upload) Outcome {
	genCtx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	image, err := s.generator.GenerateImage(genCtx, prompt, upload.Data, upload.ContentType)
	if err != nil {
		log.Warnw("image provider failed, returning placeholder", "error", err)
		return Outcome{
			Kind:   OutcomePlaceholder,
			Reason: "API fallback: " + err.Error(),
			Image:  Placeholder(fillProviderError),
		}
	}
	if len(image) == 0 {
		log.Warnw("image provider returned no image, returning placeholder")
		return Outcome{
			Kind:   OutcomePlaceholder,
			Reason: "API fallback: no image in provider response",
			Image:  Placeholder(fillEmptyResponse),
		}
	}
	return Outcome{Kind: OutcomeReal, Image: image}
}

// Placeholder is a flat 512x512 RGB canvas filled with one byte value.
func Placeholder(fill byte) []byte {
	return bytes.Repeat([]byte{fill}, domain.PLACEHOLDER_SIDE*domain.PLACEHOLDER_SIDE*3)
}

func (s *creditService) GetCredits(ctx context.Context, userID string) (*domain.CreditsResponse, error) {
	balance, err := s.creditRepository.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.CreditsResponse{
		Credits:                 balance,
		CreditCostPerGeneration: domain.CREDIT_COST,
	}, nil
}

func (s *creditService) GetCreditHistory(ctx context.Context, userID string, page, limit int) ([]*domain.CreditTransaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	transactions, count, err := s.creditRepository.GetUserCreditTransactions(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.CreditTransaction, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, &domain.CreditTransaction{
			ID:          tx.ID.String(),
			Amount:      tx.Amount,
			Type:        tx.Type,
			Mode:        tx.Mode,
			Description: tx.Description,
			Balance:     tx.Balance,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return result, count, nil
}
