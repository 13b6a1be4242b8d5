package wardrobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"rhea-backend/domain"
	"rhea-backend/entities"
	"rhea-backend/internal/utils"
	"rhea-backend/internal/utils/storage"
	"rhea-backend/pkg/events"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	WardrobeService interface {
		UploadItem(ctx context.Context, userID string, req domain.UploadWardrobeItemRequest, upload *utils.Upload) (*domain.UploadWardrobeItemResponse, error)
		GetItems(ctx context.Context, userID string, category string) (*domain.WardrobeItemsResponse, error)
		DeleteItem(ctx context.Context, userID string, itemID string) error
	}

	wardrobeService struct {
		wardrobeRepository WardrobeRepository
		storage            storage.ObjectStorage
		publisher          events.Publisher
		now                func() time.Time
	}
)

func NewWardrobeService(wardrobeRepository WardrobeRepository, objectStorage storage.ObjectStorage, publisher events.Publisher) WardrobeService {
	return &wardrobeService{
		wardrobeRepository: wardrobeRepository,
		storage:            objectStorage,
		publisher:          publisher,
		now:                time.Now,
	}
}

func (s *wardrobeService) UploadItem(ctx context.Context, userID string, req domain.UploadWardrobeItemRequest, upload *utils.Upload) (*domain.UploadWardrobeItemResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	count, err := s.wardrobeRepository.CountByUser(ctx, userID)
	if err != nil {
		return nil, errors.Join(domain.ErrUpstreamFailure, err)
	}
	if count >= domain.FREE_TIER_LIMIT {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuotaExceeded, domain.MessageWardrobeFull)
	}

	if err := utils.ValidateImage(upload); err != nil {
		return nil, err
	}

	category := req.ItemCategory
	if category == "" {
		category = domain.DEFAULT_ITEM_CATEGORY
	}

	key := ObjectKey(userID, s.now(), upload.Extension())
	itemURL, err := s.storage.PutObject(ctx, key, upload.Data, upload.ContentType)
	if err != nil {
		log.Errorw("wardrobe upload failed", "user_id", userID, "key", key, "error", err)
		return nil, errors.Join(domain.ErrUpstreamFailure, fmt.Errorf("upload failed: %w", err))
	}

	metadata, err := json.Marshal(domain.WardrobeItemMetadata{
		OriginalFilename: upload.Filename,
		FileSize:         upload.Size(),
		ContentType:      upload.ContentType,
	})
	if err != nil {
		return nil, err
	}

	item := &entities.WardrobeItem{
		UserID:          uid,
		ItemURL:         itemURL,
		ItemCategory:    category,
		ItemName:        optional(req.ItemName),
		ItemDescription: optional(req.ItemDescription),
		Metadata:        datatypes.JSON(metadata),
	}
	if err := s.wardrobeRepository.CreateItem(ctx, item); err != nil {
		if delErr := s.storage.DeleteObject(ctx, key); delErr != nil {
			log.Errorw("orphaned wardrobe object", "key", key, "error", delErr)
		}
		return nil, errors.Join(domain.ErrUpstreamFailure, fmt.Errorf("database insert failed: %w", err))
	}

	events.PublishAsync(s.publisher, events.NewEvent(events.TypeWardrobeItemAdded, userID, map[string]any{
		"item_id":       item.ID.String(),
		"item_category": category,
		"item_count":    count + 1,
	}))

	return &domain.UploadWardrobeItemResponse{
		ItemID:       item.ID.String(),
		ItemURL:      itemURL,
		ItemCategory: category,
		UploadedAt:   item.CreatedAt,
	}, nil
}

// ObjectKey builds <userID>/<unix-millis>-<random>.<ext>.
func ObjectKey(userID string, at time.Time, ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s/%d-%s.%s", userID, at.UnixMilli(), suffix, ext)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *wardrobeService) GetItems(ctx context.Context, userID string, category string) (*domain.WardrobeItemsResponse, error) {
	items, err := s.wardrobeRepository.GetItems(ctx, userID, category)
	if err != nil {
		return nil, err
	}

	response := make([]domain.WardrobeItemResponse, 0, len(items))
	for _, item := range items {
		var metadata domain.WardrobeItemMetadata
		if len(item.Metadata) > 0 {
			_ = json.Unmarshal(item.Metadata, &metadata)
		}
		response = append(response, domain.WardrobeItemResponse{
			ID:              item.ID.String(),
			ItemURL:         item.ItemURL,
			ItemCategory:    item.ItemCategory,
			ItemName:        item.ItemName,
			ItemDescription: item.ItemDescription,
			Metadata:        metadata,
			CreatedAt:       item.CreatedAt,
		})
	}

	return &domain.WardrobeItemsResponse{
		Items: response,
		Count: len(response),
	}, nil
}

func (s *wardrobeService) DeleteItem(ctx context.Context, userID string, itemID string) error {
	if _, err := uuid.Parse(itemID); err != nil {
		return domain.ErrWardrobeItemNotFound
	}

	item, err := s.wardrobeRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrWardrobeItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if err := s.wardrobeRepository.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	if key := s.storage.GetObjectKeyFromLink(item.ItemURL); key != "" {
		if err := s.storage.DeleteObject(ctx, key); err != nil {
			log.Warnw("wardrobe object delete failed", "key", key, "error", err)
		}
	}
	return nil
}
