package config

import (
	"context"
	"os"
	"time"

	"rhea-backend/domain"
	"rhea-backend/internal/api/handlers"
	"rhea-backend/internal/api/routes"
	"rhea-backend/internal/middleware"
	"rhea-backend/internal/utils"
	"rhea-backend/internal/utils/lock"
	"rhea-backend/internal/utils/mailing"
	"rhea-backend/internal/utils/storage"
	"rhea-backend/pkg/analysis"
	"rhea-backend/pkg/credit"
	"rhea-backend/pkg/events"
	"rhea-backend/pkg/gemini"
	"rhea-backend/pkg/jwt"
	"rhea-backend/pkg/profile"
	"rhea-backend/pkg/shoppable"
	"rhea-backend/pkg/user"
	"rhea-backend/pkg/wardrobe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Multipart overhead on top of the largest accepted image.
const bodyLimit = domain.MAX_IMAGE_SIZE + 2*1024*1024

type stylistModel interface {
	credit.ImageGenerator
	shoppable.VisionModel
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         bodyLimit,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	ctx := context.Background()
	objectStorage, err := storage.NewObjectStorage(ctx)
	if err != nil {
		return nil, err
	}
	locker := lock.NewLocker(NewRedisClient())
	publisher := events.NewPublisher(utils.GetConfig("RABBITMQ_URL"))
	mailer := mailing.NewMailer()

	var model stylistModel
	if client, err := gemini.NewClient(ctx); err != nil {
		log.Warnw("gemini unavailable, serving placeholder results", "error", err)
		model = gemini.NewUnavailable(err)
	} else {
		model = client
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	profileRepository := profile.NewProfileRepository(db)
	creditRepository := credit.NewCreditRepository(db)
	wardrobeRepository := wardrobe.NewWardrobeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, mailer)
	profileService := profile.NewProfileService(profileRepository, analysis.NewHashClassifier(), publisher)
	creditService := credit.NewCreditService(creditRepository, profileRepository, model, locker, publisher)
	wardrobeService := wardrobe.NewWardrobeService(wardrobeRepository, objectStorage, publisher)
	shoppableService := shoppable.NewShoppableService(model, shoppable.NewImageFetcher())

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	profileHandler := handlers.NewProfileHandler(profileService)
	creditHandler := handlers.NewCreditHandler(creditService, validator)
	wardrobeHandler := handlers.NewWardrobeHandler(wardrobeService, validator)
	shoppableHandler := handlers.NewShoppableHandler(shoppableService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		ProfileHandler:   profileHandler,
		CreditHandler:    creditHandler,
		WardrobeHandler:  wardrobeHandler,
		ShoppableHandler: shoppableHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
