package domain

import (
	"fmt"
)

var (
	MessageSuccessShoppableLinks = "shoppable items extracted successfully"
	MessageFailedShoppableLinks  = "failed to extract shoppable items"

	MessageImageSourceRequired = "Either image_url or image_base64 must be provided"
	MessageMockShoppableNote   = "Vision analysis unavailable, showing sample items."
)

func ShoppableMessage(count int) string {
	return fmt.Sprintf("Found %d shoppable items in the look", count)
}

const (
	MAX_SHOPPABLE_ITEMS = 5
	AFFILIATE_ID        = "rhea-stylist-20"
	SHOP_BASE_URL       = "https://www.example.com/shop"
)

type (
	ShoppableLinksRequest struct {
		ImageURL    string `json:"image_url" validate:"omitempty,url"`
		ImageBase64 string `json:"image_base64"`
	}

	ShoppableItem struct {
		ItemTitle    string  `json:"item_title"`
		ItemCategory string  `json:"item_category"`
		Color        string  `json:"color"`
		Fabric       *string `json:"fabric"`
		StyleDetails string  `json:"style_details"`
		Price        float64 `json:"price"`
		Link         string  `json:"link"`
	}

	ShoppableMetadata struct {
		Model        string `json:"model,omitempty"`
		AnalysisType string `json:"analysis_type,omitempty"`
		Mode         string `json:"mode,omitempty"`
		Reason       string `json:"reason,omitempty"`
		Note         string `json:"note,omitempty"`
	}

	ShoppableLinksResponse struct {
		Items     []ShoppableItem   `json:"items"`
		ItemCount int               `json:"item_count"`
		Metadata  ShoppableMetadata `json:"metadata"`
	}
)
