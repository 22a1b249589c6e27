package migrations

import (
	"fmt"

	"countrymgr/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the countries table and, when seed is set,
// fills in the sample records.
func Migrate(db *gorm.DB, seed bool) error {
	// create tables
	if err := db.AutoMigrate(&models.Country{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if !seed {
		return nil
	}
	// seed the database
	return Seed(db)
}

// Wipe drops the countries table.
func Wipe(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Country{})
}
