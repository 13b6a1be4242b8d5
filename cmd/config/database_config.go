package config

import (
	"fmt"

	"rhea-backend/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DatabaseDSN builds the postgres DSN. DB_SSLMODE defaults to disable and
// DB_TIMEZONE to UTC, the zone timestamps are compared in.
func DatabaseDSN() string {
	sslMode := utils.GetConfig("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	timeZone := utils.GetConfig("DB_TIMEZONE")
	if timeZone == "" {
		timeZone = "UTC"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
		sslMode,
		timeZone,
	)
}

func ConnectDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DatabaseDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
