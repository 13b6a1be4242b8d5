package shoppable

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"rhea-backend/domain"

	"github.com/gofiber/fiber/v2/log"
)

const visionTimeout = 60 * time.Second

type (
	VisionModel interface {
		DescribeImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
		VisionModel() string
	}

	ShoppableService interface {
		ExtractItems(ctx context.Context, req domain.ShoppableLinksRequest) (*domain.ShoppableLinksResponse, error)
	}

	shoppableService struct {
		vision  VisionModel
		fetcher ImageFetcher
		rand    func() float64
	}

	detectedItem struct {
		ItemCategory     string `json:"item_category"`
		StyleDescription string `json:"style_description"`
		Color            string `json:"color"`
		Fabric           string `json:"fabric"`
		StyleDetails     string `json:"style_details"`
	}
)

func NewShoppableService(vision VisionModel, fetcher ImageFetcher) ShoppableService {
	return &shoppableService{
		vision:  vision,
		fetcher: fetcher,
		rand:    rand.Float64,
	}
}

func (s *shoppableService) ExtractItems(ctx context.Context, req domain.ShoppableLinksRequest) (*domain.ShoppableLinksResponse, error) {
	image, mimeType, err := s.loadImage(ctx, req)
	if err != nil {
		return nil, err
	}

	visionCtx, cancel := context.WithTimeout(ctx, visionTimeout)
	defer cancel()

	text, err := s.vision.DescribeImage(visionCtx, visionPrompt, image, mimeType)
	if err == nil {
		var items []domain.ShoppableItem
		if items, err = s.parseItems(text); err == nil {
			return &domain.ShoppableLinksResponse{
				Items:     items,
				ItemCount: len(items),
				Metadata: domain.ShoppableMetadata{
					Model:        s.vision.VisionModel(),
					AnalysisType: "vision",
				},
			}, nil
		}
	}

	log.Warnw("vision analysis failed, returning sample items", "error", err)
	mock := MockItems()
	return &domain.ShoppableLinksResponse{
		Items:     mock,
		ItemCount: len(mock),
		Metadata: domain.ShoppableMetadata{
			Mode:   domain.GenerationModeMock,
			Reason: "API fallback: " + err.Error(),
			Note:   domain.MessageMockShoppableNote,
		},
	}, nil
}

func (s *shoppableService) loadImage(ctx context.Context, req domain.ShoppableLinksRequest) ([]byte, string, error) {
	switch {
	case req.ImageURL != "":
		data, mimeType, err := s.fetcher.Fetch(ctx, req.ImageURL)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				return nil, "", err
			}
			return nil, "", errors.Join(domain.ErrUpstreamFailure, err)
		}
		return data, mimeType, nil
	case req.ImageBase64 != "":
		raw := req.ImageBase64
		if i := strings.LastIndex(raw, ","); i >= 0 {
			raw = raw[i+1:]
		}
		data, err := base64.StdEncoding.DecodeString(raw)
		if err != nil || len(data) == 0 {
			return nil, "", fmt.Errorf("%w: image_base64 is not valid base64", domain.ErrInvalidInput)
		}
		if len(data) > domain.MAX_IMAGE_SIZE {
			return nil, "", fmt.Errorf("%w: File too large. Maximum size is 10MB", domain.ErrInvalidInput)
		}
		return data, "image/jpeg", nil
	default:
		return nil, "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.MessageImageSourceRequired)
	}
}

// StripFences removes a surrounding markdown code fence, if any.
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func (s *shoppableService) parseItems(text string) ([]domain.ShoppableItem, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(StripFences(text)), &raw); err != nil {
		return nil, fmt.Errorf("parse vision response: %w", err)
	}

	items := make([]domain.ShoppableItem, 0, domain.MAX_SHOPPABLE_ITEMS)
	for idx := 0; idx < len(raw) && idx < domain.MAX_SHOPPABLE_ITEMS; idx++ {
		var d detectedItem
		if err := json.Unmarshal(raw[idx], &d); err != nil {
			continue
		}

		category := strings.ToLower(orDefault(d.ItemCategory, "clothing item"))
		color := orDefault(d.Color, "Classic")
		var fabric *string
		if d.Fabric != "" {
			fabric = strPtr(d.Fabric)
		}

		items = append(items, domain.ShoppableItem{
			ItemTitle:    Title(color, orDefault(d.StyleDescription, "Stylish item")),
			ItemCategory: category,
			Color:        color,
			Fabric:       fabric,
			StyleDetails: d.StyleDetails,
			Price:        Price(category, s.rand()),
			Link:         AffiliateLink(category, idx),
		})
	}

	if len(items) == 0 {
		return nil, errors.New("no items parsed")
	}
	return items, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
