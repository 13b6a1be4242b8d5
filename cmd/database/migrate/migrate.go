package migration

import (
	"fmt"
	"log"

	"rhea-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.StyleProfile{}); err != nil {
		log.Fatalf("Error migrating style profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WardrobeItem{}); err != nil {
		log.Fatalf("Error migrating wardrobe item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CreditTransaction{}); err != nil {
		log.Fatalf("Error migrating credit transaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
