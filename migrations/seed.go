package migrations

import (
	"fmt"

	"countrymgr/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var sampleCountries = []models.Country{
	models.NewCountry("USA", "United States", models.CountryOptions{InternetUsers: models.Float(46.2), AdultLiteracyRate: models.Float(78.89)}),
	models.NewCountry("FRA", "France", models.CountryOptions{InternetUsers: models.Float(83.3)}),
	models.NewCountry("IND", "India", models.CountryOptions{InternetUsers: models.Float(29.55), AdultLiteracyRate: models.Float(69.3)}),
	models.NewCountry("BRA", "Brazil", models.CountryOptions{InternetUsers: models.Float(59.08), AdultLiteracyRate: models.Float(92.05)}),
	models.NewCountry("ATA", "Antarctica", models.CountryOptions{}),
}

// Seed inserts the sample countries that are not stored yet. Existing rows
// are left untouched.
func Seed(db *gorm.DB) error {
	// silent mode
	tx := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})

	for _, c := range sampleCountries {
		country := c
		if err := tx.Where(models.Country{Code: c.Code}).FirstOrCreate(&country).Error; err != nil {
			return fmt.Errorf("seed country %s: %w", c.Code, err)
		}
	}
	return nil
}
