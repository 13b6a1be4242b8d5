package shoppable

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"rhea-backend/domain"

	"github.com/gofiber/fiber/v2"
)

type (
	ImageFetcher interface {
		Fetch(ctx context.Context, url string) ([]byte, string, error)
	}

	agentFetcher struct {
		timeout time.Duration
	}
)

func NewImageFetcher() ImageFetcher {
	return &agentFetcher{timeout: 15 * time.Second}
}

func (f *agentFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		timeout = time.Until(deadline)
	}

	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)

	agent := fiber.Get(url).Timeout(timeout).MaxRedirectsCount(3)
	agent.SetResponse(resp)
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, "", errs[0]
	}
	if code != fiber.StatusOK {
		return nil, "", fmt.Errorf("fetch image: unexpected status %d", code)
	}
	if len(body) > domain.MAX_IMAGE_SIZE {
		return nil, "", fmt.Errorf("%w: File too large. Maximum size is 10MB", domain.ErrInvalidInput)
	}

	contentType := string(resp.Header.ContentType())
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	return body, contentType, nil
}
