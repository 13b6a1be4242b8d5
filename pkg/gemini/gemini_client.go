package gemini

import (
	"context"
	"errors"
	"fmt"

	"rhea-backend/internal/utils"

	"google.golang.org/genai"
)

const (
	DefaultImageModel  = "gemini-2.0-flash-exp"
	DefaultVisionModel = "gemini-2.0-flash-exp"
)

var ErrNoContent = errors.New("gemini response has no content")

// Client serves both look generation and outfit description.
type Client struct {
	client      *genai.Client
	imageModel  string
	visionModel string
}

func NewClient(ctx context.Context) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  utils.GetConfig("GEMINI_API_KEY"),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	c := &Client{
		client:      client,
		imageModel:  utils.GetConfig("GEMINI_MODEL"),
		visionModel: utils.GetConfig("GEMINI_VISION_MODEL"),
	}
	if c.imageModel == "" {
		c.imageModel = DefaultImageModel
	}
	if c.visionModel == "" {
		c.visionModel = DefaultVisionModel
	}
	return c, nil
}

func (c *Client) Model() string {
	return c.imageModel
}

func (c *Client) VisionModel() string {
	return c.visionModel
}

// GenerateImage returns the first inline image of the response, or nil when
// the model answered without one.
func (c *Client) GenerateImage(ctx context.Context, prompt string, image []byte, mimeType string) ([]byte, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.imageModel, promptWithImage(prompt, image, mimeType), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return nil, err
	}
	return firstImage(resp), nil
}

func (c *Client) DescribeImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.visionModel, promptWithImage(prompt, image, mimeType), &genai.GenerateContentConfig{})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}

func promptWithImage(prompt string, image []byte, mimeType string) []*genai.Content {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func firstImage(resp *genai.GenerateContentResponse) []byte {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return nil
	}
	for _, part := range cand.Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data
		}
	}
	return nil
}

// Unavailable stands in for Client when no provider can be reached. Every
// call fails with the construction error so callers take their fallback path.
type Unavailable struct {
	err error
}

func NewUnavailable(err error) *Unavailable {
	return &Unavailable{err: err}
}

func (u *Unavailable) Model() string {
	return DefaultImageModel
}

func (u *Unavailable) VisionModel() string {
	return DefaultVisionModel
}

func (u *Unavailable) GenerateImage(context.Context, string, []byte, string) ([]byte, error) {
	return nil, u.err
}

func (u *Unavailable) DescribeImage(context.Context, string, []byte, string) (string, error) {
	return "", u.err
}
