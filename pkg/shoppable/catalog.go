package shoppable

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"rhea-backend/domain"
)

type priceRange struct {
	min, max float64
}

var priceRanges = map[string]priceRange{
	"blazer":     {129.99, 249.99},
	"jacket":     {149.99, 299.99},
	"coat":       {199.99, 399.99},
	"dress":      {89.99, 199.99},
	"pants":      {79.99, 149.99},
	"trousers":   {89.99, 159.99},
	"jeans":      {69.99, 129.99},
	"skirt":      {59.99, 119.99},
	"shirt":      {49.99, 99.99},
	"blouse":     {59.99, 109.99},
	"sweater":    {69.99, 139.99},
	"shoes":      {99.99, 249.99},
	"boots":      {139.99, 299.99},
	"bag":        {149.99, 399.99},
	"handbag":    {179.99, 449.99},
	"jewelry":    {39.99, 199.99},
	"necklace":   {49.99, 149.99},
	"earrings":   {29.99, 99.99},
	"bracelet":   {39.99, 129.99},
	"watch":      {199.99, 599.99},
	"sunglasses": {89.99, 249.99},
	"belt":       {39.99, 89.99},
	"scarf":      {29.99, 79.99},
	"hat":        {39.99, 99.99},
}

var defaultPriceRange = priceRange{59.99, 149.99}

var whitespace = regexp.MustCompile(`\s+`)

// Price places r in [0,1) inside the category range and rounds to cents.
func Price(category string, r float64) float64 {
	pr, ok := priceRanges[strings.ToLower(category)]
	if !ok {
		pr = defaultPriceRange
	}
	return math.Round((pr.min+r*(pr.max-pr.min))*100) / 100
}

func AffiliateLink(category string, index int) string {
	itemID := fmt.Sprintf("%s-%03d", whitespace.ReplaceAllString(category, "-"), index+1)
	return fmt.Sprintf("%s/%s?ref=%s", domain.SHOP_BASE_URL, itemID, domain.AFFILIATE_ID)
}

func Title(color, style string) string {
	title := []rune(strings.TrimSpace(color + " " + style))
	if len(title) > 100 {
		return string(title[:97]) + "..."
	}
	return string(title)
}

func strPtr(s string) *string {
	return &s
}

// MockItems is returned whenever vision analysis is unavailable.
func MockItems() []domain.ShoppableItem {
	return []domain.ShoppableItem{
		{
			ItemTitle:    "Structured Blazer",
			ItemCategory: "blazer",
			Color:        "Emerald Green",
			Fabric:       strPtr("Silk blend"),
			StyleDetails: "Notched lapels, gold buttons, tailored fit",
			Price:        189.99,
			Link:         domain.SHOP_BASE_URL + "/blazer-001",
		},
		{
			ItemTitle:    "High-Waisted Trousers",
			ItemCategory: "pants",
			Color:        "Black",
			Fabric:       strPtr("Wool crepe"),
			StyleDetails: "Front pleat, ankle length, classic fit",
			Price:        129.99,
			Link:         domain.SHOP_BASE_URL + "/trousers-002",
		},
		{
			ItemTitle:    "Pointed Toe Pumps",
			ItemCategory: "shoes",
			Color:        "Nude",
			Fabric:       strPtr("Leather"),
			StyleDetails: "3-inch heel, cushioned insole",
			Price:        159.99,
			Link:         domain.SHOP_BASE_URL + "/shoes-003",
		},
	}
}
