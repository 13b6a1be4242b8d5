package main

import (
	"rhea-backend/cmd/config"
	migration "rhea-backend/cmd/database/migrate"
	"rhea-backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("build app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Infow("listening", "port", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
