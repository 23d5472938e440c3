package database

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/AlexSec-DEV/BlackKeyv2/models"
)

// Migrate runs AutoMigrate for every table and seeds the rows the platform
// cannot run without: the package tiers and the public stats counters.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Investment{},
		&models.PackageSettings{},
		&models.Transaction{},
		&models.PaymentInfo{},
		&models.FakeStats{},
		&models.BlockedIP{},
	)
	if err != nil {
		return err
	}

	if err := seedPackageSettings(db); err != nil {
		return err
	}

	// ensure the singleton stats row exists
	if _, err := models.GetFakeStats(db); err != nil {
		return err
	}

	return nil
}

// seedPackageSettings inserts any missing tier. Existing rows keep their
// admin-tuned rates and limits.
func seedPackageSettings(db *gorm.DB) error {
	for _, def := range models.DefaultPackageSettings() {
		var existing models.PackageSettings
		err := db.Where("type = ?", def.Type).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&def).Error; err != nil {
			return err
		}
		log.Printf("[database] seeded package %s (%.2f%%, %.0f-%.0f)", def.Type, def.InterestRate, def.MinAmount, def.MaxAmount)
	}
	return nil
}
