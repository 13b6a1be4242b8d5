package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"rhea-backend/internal/utils"
	"rhea-backend/pkg/events"

	"github.com/gofiber/fiber/v2/log"
)

// Drains the activity queue into ./logs/activity.log.
func main() {
	utils.LoadConfig()

	url := utils.GetConfig("RABBITMQ_URL")
	if url == "" {
		log.Fatal("RABBITMQ_URL is not set")
	}

	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile("./logs/activity.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	defer file.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infow("activity worker started", "queue", events.ActivityQueue)
	if err := events.Consume(ctx, url, file); err != nil && ctx.Err() == nil {
		log.Fatalf("consume activity: %v", err)
	}
}
