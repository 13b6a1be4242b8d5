package routes

import (
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"rhea-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandlers struct{}

func ok(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

func (stubHandlers) Register(c *fiber.Ctx) error         { return ok(c) }
func (stubHandlers) Login(c *fiber.Ctx) error            { return ok(c) }
func (stubHandlers) Me(c *fiber.Ctx) error               { return ok(c) }
func (stubHandlers) AnalyzeFace(c *fiber.Ctx) error      { return ok(c) }
func (stubHandlers) GetProfile(c *fiber.Ctx) error       { return ok(c) }
func (stubHandlers) GenerateLook(c *fiber.Ctx) error     { return ok(c) }
func (stubHandlers) GetCredits(c *fiber.Ctx) error       { return ok(c) }
func (stubHandlers) GetCreditHistory(c *fiber.Ctx) error { return ok(c) }
func (stubHandlers) UploadItem(c *fiber.Ctx) error       { return ok(c) }
func (stubHandlers) GetItems(c *fiber.Ctx) error         { return ok(c) }
func (stubHandlers) DeleteItem(c *fiber.Ctx) error       { return ok(c) }
func (stubHandlers) ShoppableLinks(c *fiber.Ctx) error   { return ok(c) }

// countingMiddleware admits any request carrying an Authorization header.
type countingMiddleware struct {
	hits atomic.Int32
}

func (m *countingMiddleware) CORSMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error { return c.Next() }
}

func (m *countingMiddleware) AuthMiddleware(jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.hits.Add(1)
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.Next()
	}
}

func newConfig(mw *countingMiddleware) *Config {
	h := stubHandlers{}
	return &Config{
		App:              fiber.New(),
		UserHandler:      h,
		ProfileHandler:   h,
		CreditHandler:    h,
		WardrobeHandler:  h,
		ShoppableHandler: h,
		Middleware:       mw,
	}
}

func request(t *testing.T, app *fiber.App, method, path string, authed bool) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authed {
		req.Header.Set("Authorization", "Bearer token")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthRunsOncePerProtectedRoute(t *testing.T) {
	routes := []struct {
		method, path string
	}{
		{fiber.MethodPost, "/api/v1/analyze-face"},
		{fiber.MethodGet, "/api/v1/profile"},
		{fiber.MethodPost, "/api/v1/generate-look"},
		{fiber.MethodGet, "/api/v1/credits"},
		{fiber.MethodGet, "/api/v1/credits/history"},
		{fiber.MethodPost, "/api/v1/shoppable-links"},
		{fiber.MethodPost, "/api/v1/wardrobe/upload"},
		{fiber.MethodGet, "/api/v1/wardrobe/items"},
		{fiber.MethodDelete, "/api/v1/wardrobe/items/abc"},
		{fiber.MethodGet, "/api/v1/wardrobe/credits"},
		{fiber.MethodGet, "/api/v1/users/me"},
	}

	for _, r := range routes {
		mw := &countingMiddleware{}
		cfg := newConfig(mw)
		cfg.Setup()

		assert.Equal(t, fiber.StatusOK, request(t, cfg.App, r.method, r.path, true), r.path)
		assert.Equal(t, int32(1), mw.hits.Load(), r.path)
		assert.Equal(t, fiber.StatusUnauthorized, request(t, cfg.App, r.method, r.path, false), r.path)
	}
}

func TestPublicRoutesIgnoreRegistrationOrder(t *testing.T) {
	mw := &countingMiddleware{}
	cfg := newConfig(mw)
	cfg.Stylist()
	cfg.Wardrobe()
	cfg.User()
	cfg.GuestRoute()

	assert.Equal(t, fiber.StatusOK, request(t, cfg.App, fiber.MethodPost, "/api/v1/users/register", false))
	assert.Equal(t, fiber.StatusOK, request(t, cfg.App, fiber.MethodPost, "/api/v1/users/login", false))
	assert.Equal(t, fiber.StatusOK, request(t, cfg.App, fiber.MethodGet, "/api/ping", false))
	assert.Equal(t, int32(0), mw.hits.Load())
}
