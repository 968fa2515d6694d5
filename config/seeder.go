package config

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"ghorbari_backend/models"
	"ghorbari_backend/utils"
)

// divisionDistricts is the seed reference data: the eight divisions of
// Bangladesh and a selection of their districts.
var divisionDistricts = map[string][]string{
	"Dhaka":      {"Dhaka", "Gazipur", "Narayanganj", "Tangail"},
	"Chattogram": {"Chattogram", "Cox's Bazar", "Cumilla", "Feni"},
	"Rajshahi":   {"Rajshahi", "Bogura", "Pabna", "Sirajganj"},
	"Khulna":     {"Khulna", "Jashore", "Satkhira", "Bagerhat"},
	"Barishal":   {"Barishal", "Bhola", "Patuakhali"},
	"Sylhet":     {"Sylhet", "Moulvibazar", "Habiganj", "Sunamganj"},
	"Rangpur":    {"Rangpur", "Dinajpur", "Kurigram"},
	"Mymensingh": {"Mymensingh", "Jamalpur", "Netrokona", "Sherpur"},
}

// SeedReferenceData inserts the division and district lookup tables if
// they are not present yet. Idempotent.
func SeedReferenceData(db *gorm.DB) {
	for divisionName, districts := range divisionDistricts {
		var division models.Division
		err := db.Where("name = ?", divisionName).First(&division).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				log.Error().Err(err).Str("division", divisionName).Msg("failed to look up division")
				continue
			}
			division = models.Division{Name: divisionName}
			if err := db.Create(&division).Error; err != nil {
				log.Error().Err(err).Str("division", divisionName).Msg("failed to seed division")
				continue
			}
		}

		for _, districtName := range districts {
			var district models.District
			err := db.Where("name = ? AND division_id = ?", districtName, division.ID).First(&district).Error
			if err == gorm.ErrRecordNotFound {
				district = models.District{Name: districtName, DivisionID: division.ID}
				if err := db.Create(&district).Error; err != nil {
					log.Error().Err(err).Str("district", districtName).Msg("failed to seed district")
				}
			}
		}
	}

	log.Info().Msg("reference data seeded")
}

// SeedAccounts inserts demo seller and buyer accounts for local
// development.
func SeedAccounts(db *gorm.DB) {
	password, _ := utils.HashPassword("password123")

	sellers := []models.Seller{
		{
			Fullname: "Rahim Uddin",
			Username: "rahim",
			Email:    "rahim@example.com",
			Phone:    "01711111111",
			Password: password,
			Address:  "House 12, Road 5, Dhanmondi, Dhaka",
			Gender:   "Male",
			Country:  "Bangladesh",
		},
		{
			Fullname: "Karima Begum",
			Username: "karima",
			Email:    "karima@example.com",
			Phone:    "01822222222",
			Password: password,
			Address:  "Agrabad, Chattogram",
			Gender:   "Female",
			Country:  "Bangladesh",
		},
	}

	for _, seller := range sellers {
		var existing models.Seller
		if err := db.Where("email = ?", seller.Email).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&seller).Error; err != nil {
				log.Error().Err(err).Str("username", seller.Username).Msg("failed to seed seller")
			}
		}
	}

	buyers := []models.Buyer{
		{
			Fullname: "Jamal Hossain",
			Username: "jamal",
			Email:    "jamal@example.com",
			Phone:    "01933333333",
			Password: password,
			Address:  "Zindabazar, Sylhet",
			Gender:   "Male",
			Country:  "Bangladesh",
		},
	}

	for _, buyer := range buyers {
		var existing models.Buyer
		if err := db.Where("email = ?", buyer.Email).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&buyer).Error; err != nil {
				log.Error().Err(err).Str("username", buyer.Username).Msg("failed to seed buyer")
			}
		}
	}

	log.Info().Msg("demo accounts seeded")
}
