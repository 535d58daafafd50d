package migration

import (
	"HomeStash-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	// Locations first, items hold the foreign key.
	if err := db.AutoMigrate(&entities.StorageLocation{}); err != nil {
		log.Fatalf("Error migrating storage location database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		log.Fatalf("Error migrating item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
