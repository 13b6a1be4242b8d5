package wardrobe

import (
	"context"

	"rhea-backend/entities"

	"gorm.io/gorm"
)

type (
	WardrobeRepository interface {
		CountByUser(ctx context.Context, userID string) (int64, error)
		CreateItem(ctx context.Context, item *entities.WardrobeItem) error
		GetItems(ctx context.Context, userID string, category string) ([]*entities.WardrobeItem, error)
		GetItemByID(ctx context.Context, id string) (*entities.WardrobeItem, error)
		DeleteItem(ctx context.Context, id string) error
	}

	wardrobeRepository struct {
		db *gorm.DB
	}
)

func NewWardrobeRepository(db *gorm.DB) WardrobeRepository {
	return &wardrobeRepository{
		db: db,
	}
}

func (r *wardrobeRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.WardrobeItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *wardrobeRepository) CreateItem(ctx context.Context, item *entities.WardrobeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wardrobeRepository) GetItems(ctx context.Context, userID string, category string) ([]*entities.WardrobeItem, error) {
	var items []*entities.WardrobeItem
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if category != "" {
		query = query.Where("item_category = ?", category)
	}
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *wardrobeRepository) GetItemByID(ctx context.Context, id string) (*entities.WardrobeItem, error) {
	var item entities.WardrobeItem
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wardrobeRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.WardrobeItem{}, "id = ?", id).Error
}
