package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestFirstImage(t *testing.T) {
	assert.Nil(t, firstImage(nil))
	assert.Nil(t, firstImage(&genai.GenerateContentResponse{}))

	textOnly := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText("no image today", genai.RoleModel)}},
	}
	assert.Nil(t, firstImage(textOnly))

	withImage := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText("here you go"),
			genai.NewPartFromBytes([]byte{0x89, 'P', 'N', 'G'}, "image/png"),
		}, genai.RoleModel)}},
	}
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, firstImage(withImage))
}

func TestPromptWithImage(t *testing.T) {
	contents := promptWithImage("style me", []byte{1, 2}, "image/jpeg")

	assert.Len(t, contents, 1)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Len(t, contents[0].Parts, 2)
	assert.Equal(t, "style me", contents[0].Parts[0].Text)
	assert.Equal(t, "image/jpeg", contents[0].Parts[1].InlineData.MIMEType)
}

func TestUnavailable(t *testing.T) {
	cause := errors.New("api key is required")
	u := NewUnavailable(cause)

	image, err := u.GenerateImage(context.Background(), "prompt", []byte{1}, "image/png")
	assert.Nil(t, image)
	assert.ErrorIs(t, err, cause)

	text, err := u.DescribeImage(context.Background(), "prompt", []byte{1}, "image/png")
	assert.Empty(t, text)
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, DefaultImageModel, u.Model())
	assert.Equal(t, DefaultVisionModel, u.VisionModel())
}
