package models

import (
	"time"
)

// Property type enum values.
const (
	PropertyTypeHouse     = "House"
	PropertyTypeApartment = "Apartment"
)

// Parking availability enum values.
const (
	ParkingYes = "Yes"
	ParkingNo  = "No"
)

// Amenities are stored flattened on the property row.
type Amenities struct {
	CCTV     bool `gorm:"default:false" json:"cctv"`
	Gym      bool `gorm:"default:false" json:"gym"`
	Security bool `gorm:"default:false" json:"security"`
	Pool     bool `gorm:"default:false" json:"pool"`
}

// Property is one property-for-sale record, owned by exactly one seller.
type Property struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	OwnerEmail string `gorm:"index;size:100;not null" json:"ownerEmail"`

	PropertyTitle string  `gorm:"size:255;not null" json:"propertyTitle"`
	PropertyType  string  `gorm:"size:20;not null" json:"propertyType"` // House, Apartment
	Price         float64 `gorm:"not null" json:"price"`                // BDT
	Bedrooms      int     `gorm:"not null" json:"bedrooms"`
	Bathrooms     int     `gorm:"not null" json:"bathrooms"`
	TotalArea     float64 `gorm:"not null" json:"totalArea"` // sqft
	YearBuilt     int     `gorm:"not null" json:"yearBuilt"`

	Address       string `gorm:"type:text;not null" json:"address"`
	DivisionID    uint   `gorm:"index;not null" json:"division"`
	DistrictID    uint   `gorm:"index;not null" json:"district"`
	ZipPostalCode string `gorm:"size:20;not null" json:"zipPostalCode"`

	Description string    `gorm:"type:text;not null" json:"description"`
	Amenities   Amenities `gorm:"embedded;embeddedPrefix:amenity_" json:"amenities"`

	ParkingAvailability string `gorm:"size:5;not null" json:"parkingAvailability"` // Yes, No

	// Contact details are a snapshot of the seller profile taken at
	// creation time; later profile edits do not propagate here.
	ContactName string `gorm:"size:100;not null" json:"contactName"`
	Email       string `gorm:"size:100;not null" json:"email"`
	Phone       string `gorm:"size:20;not null" json:"phone"`

	Image string `json:"image"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
