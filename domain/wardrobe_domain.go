package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	MessageSuccessUploadWardrobeItem = "wardrobe item uploaded successfully"
	MessageSuccessGetWardrobeItems   = "wardrobe items retrieved successfully"
	MessageSuccessDeleteWardrobeItem = "wardrobe item deleted successfully"

	MessageFailedUploadWardrobeItem = "failed to upload wardrobe item"
	MessageFailedGetWardrobeItems   = "failed to retrieve wardrobe items"
	MessageFailedDeleteWardrobeItem = "failed to delete wardrobe item"

	MessageWardrobeFull = "Wardrobe Full - Upgrade to Pro for Unlimited Storage. You've reached the 15-item limit for the Free Tier."

	ErrWardrobeItemNotFound = errors.New("wardrobe item not found")
)

func WardrobeUploadMessage(itemName string) string {
	if itemName == "" {
		itemName = "item"
	}
	return fmt.Sprintf("Successfully added %s to your wardrobe!", itemName)
}

func WardrobeItemsMessage(count int) string {
	return fmt.Sprintf("Retrieved %d wardrobe items", count)
}

const (
	FREE_TIER_LIMIT = 15

	DEFAULT_ITEM_CATEGORY = "uncategorized"
)

type (
	UploadWardrobeItemRequest struct {
		ItemCategory    string `form:"item_category" validate:"omitempty,max=64"`
		ItemName        string `form:"item_name" validate:"omitempty,max=120"`
		ItemDescription string `form:"item_description" validate:"omitempty,max=1000"`
	}

	UploadWardrobeItemResponse struct {
		ItemID       string    `json:"item_id"`
		ItemURL      string    `json:"item_url"`
		ItemCategory string    `json:"item_category"`
		UploadedAt   time.Time `json:"uploaded_at"`
	}

	WardrobeItemMetadata struct {
		OriginalFilename string `json:"original_filename"`
		FileSize         int64  `json:"file_size"`
		ContentType      string `json:"content_type"`
	}

	WardrobeItemResponse struct {
		ID              string               `json:"id"`
		ItemURL         string               `json:"item_url"`
		ItemCategory    string               `json:"item_category"`
		ItemName        *string              `json:"item_name"`
		ItemDescription *string              `json:"item_description"`
		Metadata        WardrobeItemMetadata `json:"metadata"`
		CreatedAt       time.Time            `json:"created_at"`
	}

	WardrobeItemsResponse struct {
		Items []WardrobeItemResponse `json:"items"`
		Count int                    `json:"count"`
	}
)
