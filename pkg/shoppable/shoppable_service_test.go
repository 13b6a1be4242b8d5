package shoppable

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"rhea-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVision struct {
	text     string
	err      error
	gotImage []byte
	gotMime  string
}

func (v *fakeVision) DescribeImage(_ context.Context, _ string, image []byte, mimeType string) (string, error) {
	v.gotImage, v.gotMime = image, mimeType
	return v.text, v.err
}

func (v *fakeVision) VisionModel() string {
	return "gemini-vision-test"
}

type fakeFetcher struct {
	data []byte
	mime string
	err  error
}

func (f *fakeFetcher) Fetch(context.Context, string) ([]byte, string, error) {
	return f.data, f.mime, f.err
}

func newTestService(v VisionModel, f ImageFetcher) *shoppableService {
	s := NewShoppableService(v, f).(*shoppableService)
	s.rand = func() float64 { return 0.5 }
	return s
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestExtractItemsRequiresImage(t *testing.T) {
	_, err := newTestService(&fakeVision{}, &fakeFetcher{}).ExtractItems(context.Background(), domain.ShoppableLinksRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), domain.MessageImageSourceRequired)
}

func TestExtractItemsFromVision(t *testing.T) {
	vision := &fakeVision{text: "```json\n" + `[
		{"item_category": "Blazer", "style_description": "Structured single-breasted blazer", "color": "Emerald Green", "fabric": "Silk blend", "style_details": "Gold buttons"},
		{"item_category": "tote bag", "style_description": "Oversized tote", "color": "Tan", "fabric": "", "style_details": ""},
		"not an object",
		{"color": "Red"}
	]` + "\n```"}

	res, err := newTestService(vision, &fakeFetcher{}).ExtractItems(context.Background(), domain.ShoppableLinksRequest{
		ImageBase64: "data:image/jpeg;base64," + b64("look"),
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("look"), vision.gotImage)
	assert.Equal(t, "image/jpeg", vision.gotMime)
	assert.Equal(t, "vision", res.Metadata.AnalysisType)
	assert.Equal(t, "gemini-vision-test", res.Metadata.Model)
	assert.Empty(t, res.Metadata.Mode)
	require.Equal(t, 3, res.ItemCount)
	require.Len(t, res.Items, 3)

	blazer := res.Items[0]
	assert.Equal(t, "Emerald Green Structured single-breasted blazer", blazer.ItemTitle)
	assert.Equal(t, "blazer", blazer.ItemCategory)
	require.NotNil(t, blazer.Fabric)
	assert.Equal(t, "Silk blend", *blazer.Fabric)
	assert.Equal(t, 189.99, blazer.Price)
	assert.Equal(t, "https://www.example.com/shop/blazer-001?ref=rhea-stylist-20", blazer.Link)

	tote := res.Items[1]
	assert.Nil(t, tote.Fabric)
	assert.Equal(t, 104.99, tote.Price)
	assert.Equal(t, "https://www.example.com/shop/tote-bag-002?ref=rhea-stylist-20", tote.Link)

	fallback := res.Items[2]
	assert.Equal(t, "clothing item", fallback.ItemCategory)
	assert.Equal(t, "Red Stylish item", fallback.ItemTitle)
	assert.Equal(t, "https://www.example.com/shop/clothing-item-004?ref=rhea-stylist-20", fallback.Link)
}

func TestExtractItemsCapsAtFive(t *testing.T) {
	entry := `{"item_category":"hat","style_description":"Fedora","color":"Black"}`
	vision := &fakeVision{text: "[" + strings.Repeat(entry+",", 7) + entry + "]"}

	res, err := newTestService(vision, &fakeFetcher{}).ExtractItems(context.Background(), domain.ShoppableLinksRequest{ImageBase64: b64("x")})
	require.NoError(t, err)
	assert.Len(t, res.Items, 5)
	assert.Equal(t, "https://www.example.com/shop/hat-005?ref=rhea-stylist-20", res.Items[4].Link)
}

func TestExtractItemsFallsBackToMock(t *testing.T) {
	tests := []struct {
		name   string
		vision *fakeVision
		reason string
	}{
		{"provider error", &fakeVision{err: errors.New("503 unavailable")}, "API fallback: 503 unavailable"},
		{"not json", &fakeVision{text: "I see a blazer"}, "API fallback: parse vision response"},
		{"empty array", &fakeVision{text: "[]"}, "API fallback: no items parsed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newTestService(tt.vision, &fakeFetcher{}).ExtractItems(context.Background(), domain.ShoppableLinksRequest{ImageBase64: b64("x")})
			require.NoError(t, err)

			assert.Equal(t, MockItems(), res.Items)
			assert.Equal(t, 3, res.ItemCount)
			assert.Equal(t, "mock", res.Metadata.Mode)
			assert.True(t, strings.HasPrefix(res.Metadata.Reason, tt.reason), res.Metadata.Reason)
		})
	}
}

func TestExtractItemsFromURL(t *testing.T) {
	vision := &fakeVision{text: `[{"item_category":"dress","style_description":"Wrap dress","color":"Navy"}]`}
	fetcher := &fakeFetcher{data: []byte("png bytes"), mime: "image/png"}

	res, err := newTestService(vision, fetcher).ExtractItems(context.Background(), domain.ShoppableLinksRequest{ImageURL: "https://cdn.example.com/look.png"})
	require.NoError(t, err)
	assert.Equal(t, "image/png", vision.gotMime)
	assert.Equal(t, 144.99, res.Items[0].Price)
}

func TestExtractItemsURLFetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("dial tcp: timeout")}

	_, err := newTestService(&fakeVision{}, fetcher).ExtractItems(context.Background(), domain.ShoppableLinksRequest{ImageURL: "https://cdn.example.com/look.png"})
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
}

func TestExtractItemsBadBase64(t *testing.T) {
	_, err := newTestService(&fakeVision{}, &fakeFetcher{}).ExtractItems(context.Background(), domain.ShoppableLinksRequest{ImageBase64: "%%%"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrice(t *testing.T) {
	assert.Equal(t, 129.99, Price("blazer", 0))
	assert.Equal(t, 599.99, Price("WATCH", 1))
	assert.Equal(t, 59.99, Price("poncho", 0))
	for i := 0; i < 100; i++ {
		p := Price("earrings", float64(i)/100)
		assert.True(t, p >= 29.99 && p <= 99.99)
	}
}

func TestTitleTruncation(t *testing.T) {
	long := strings.Repeat("a", 120)
	title := Title("Red", long)
	assert.Len(t, title, 100)
	assert.True(t, strings.HasSuffix(title, "..."))

	assert.Equal(t, "Blue Jeans", Title("Blue", "Jeans"))
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, "[1]", StripFences("```json\n[1]\n```"))
	assert.Equal(t, "[1]", StripFences("```\n[1]```"))
	assert.Equal(t, "[1]", StripFences("  [1]  "))
}
