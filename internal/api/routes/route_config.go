package routes

import (
	"rhea-backend/internal/api/handlers"
	"rhea-backend/internal/middleware"
	"rhea-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	ProfileHandler   handlers.ProfileHandler
	CreditHandler    handlers.CreditHandler
	WardrobeHandler  handlers.WardrobeHandler
	ShoppableHandler handlers.ShoppableHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Stylist()
	c.Wardrobe()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Stylist() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	api := c.App.Group("/api/v1")

	api.Post("/analyze-face", auth, c.ProfileHandler.AnalyzeFace)
	api.Get("/profile", auth, c.ProfileHandler.GetProfile)

	api.Post("/generate-look", auth, c.CreditHandler.GenerateLook)
	api.Get("/credits", auth, c.CreditHandler.GetCredits)
	api.Get("/credits/history", auth, c.CreditHandler.GetCreditHistory)

	api.Post("/shoppable-links", auth, c.ShoppableHandler.ShoppableLinks)
}

func (c *Config) Wardrobe() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	wardrobe := c.App.Group("/api/v1/wardrobe")

	wardrobe.Post("/upload", auth, c.WardrobeHandler.UploadItem)
	wardrobe.Get("/items", auth, c.WardrobeHandler.GetItems)
	wardrobe.Delete("/items/:id", auth, c.WardrobeHandler.DeleteItem)
	wardrobe.Get("/credits", auth, c.CreditHandler.GetCredits)
}
