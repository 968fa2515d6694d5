package config

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"ghorbari_backend/models"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Seller{},
		&models.Buyer{},
		&models.Division{},
		&models.District{},
		&models.Property{},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to migrate database schema")
		return err
	}

	log.Info().Msg("database migrations completed")

	// Reference data must exist even on a normal migration.
	SeedReferenceData(db)

	return nil
}

func ResetAndMigrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.Seller{},
		&models.Buyer{},
		&models.Division{},
		&models.District{},
		&models.Property{},
	}

	if err := db.Migrator().DropTable(tables...); err != nil {
		log.Error().Err(err).Msg("failed to drop tables")
		return err
	}

	if err := db.AutoMigrate(tables...); err != nil {
		log.Error().Err(err).Msg("failed to auto migrate")
		return err
	}

	SeedReferenceData(db)
	SeedAccounts(db)

	log.Info().Msg("database reset and migration completed")
	return nil
}
