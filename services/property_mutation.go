package services

import (
	"context"
	"errors"
	"fmt"

	"ghorbari_backend/models"
	"ghorbari_backend/repository"
)

// CreatePropertyInput carries the seller-supplied fields for a new
// listing. Contact details are not part of the input: they are
// snapshotted from the seller profile at creation time.
type CreatePropertyInput struct {
	PropertyTitle       string           `json:"propertyTitle"`
	PropertyType        string           `json:"propertyType"`
	Price               float64          `json:"price"`
	Bedrooms            int              `json:"bedrooms"`
	Bathrooms           int              `json:"bathrooms"`
	TotalArea           float64          `json:"totalArea"`
	YearBuilt           int              `json:"yearBuilt"`
	Address             string           `json:"address"`
	DivisionID          uint             `json:"division"`
	DistrictID          uint             `json:"district"`
	ZipPostalCode       string           `json:"zipPostalCode"`
	Description         string           `json:"description"`
	Amenities           models.Amenities `json:"amenities"`
	ParkingAvailability string           `json:"parkingAvailability"`
	Image               string           `json:"image"`
}

// UpdatePropertyInput lists the fields a partial update may change. Nil
// pointers leave the stored value untouched; supplied fields re-run the
// same validation as create.
type UpdatePropertyInput struct {
	PropertyTitle       *string           `json:"propertyTitle"`
	PropertyType        *string           `json:"propertyType"`
	Price               *float64          `json:"price"`
	Bedrooms            *int              `json:"bedrooms"`
	Bathrooms           *int              `json:"bathrooms"`
	TotalArea           *float64          `json:"totalArea"`
	YearBuilt           *int              `json:"yearBuilt"`
	Address             *string           `json:"address"`
	DivisionID          *uint             `json:"division"`
	DistrictID          *uint             `json:"district"`
	ZipPostalCode       *string           `json:"zipPostalCode"`
	Description         *string           `json:"description"`
	Amenities           *models.Amenities `json:"amenities"`
	ParkingAvailability *string           `json:"parkingAvailability"`
	Image               *string           `json:"image"`
}

// PropertyMutationService creates, updates and deletes listings.
// Ownership is enforced here as a precondition of Update and Delete, not
// left to the transport layer.
type PropertyMutationService struct {
	properties repository.PropertyRepository
	sellers    repository.SellerRepository
}

func NewPropertyMutationService(properties repository.PropertyRepository, sellers repository.SellerRepository) *PropertyMutationService {
	return &PropertyMutationService{properties: properties, sellers: sellers}
}

// Create validates the input and persists a new listing owned by the
// caller. Division and district presence is checked explicitly before
// the rest of the schema validation.
func (s *PropertyMutationService) Create(ctx context.Context, ident Identity, input CreatePropertyInput) (*models.Property, error) {
	if ident.Email == "" {
		return nil, ErrUnauthenticated
	}
	if input.DivisionID == 0 {
		return nil, missingField("division")
	}
	if input.DistrictID == 0 {
		return nil, missingField("district")
	}

	property := &models.Property{
		OwnerEmail:          ident.Email,
		PropertyTitle:       input.PropertyTitle,
		PropertyType:        input.PropertyType,
		Price:               input.Price,
		Bedrooms:            input.Bedrooms,
		Bathrooms:           input.Bathrooms,
		TotalArea:           input.TotalArea,
		YearBuilt:           input.YearBuilt,
		Address:             input.Address,
		DivisionID:          input.DivisionID,
		DistrictID:          input.DistrictID,
		ZipPostalCode:       input.ZipPostalCode,
		Description:         input.Description,
		Amenities:           input.Amenities,
		ParkingAvailability: input.ParkingAvailability,
		Image:               input.Image,
	}
	if err := validateProperty(property); err != nil {
		return nil, err
	}

	seller, err := s.sellers.FindByEmail(ctx, ident.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("load seller profile: %w", err)
	}

	// Snapshot of the profile as it is right now; later profile edits
	// do not touch existing listings.
	property.ContactName = seller.Fullname
	property.Email = seller.Email
	property.Phone = seller.Phone

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Update applies a partial update to the listing with the given id. The
// caller must be the owner. Supplied fields are validated against the
// same rules as create.
func (s *PropertyMutationService) Update(ctx context.Context, ident Identity, id uint, input UpdatePropertyInput) (*models.Property, error) {
	if ident.Email == "" {
		return nil, ErrUnauthenticated
	}

	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if property.OwnerEmail != ident.Email {
		return nil, ErrForbidden
	}

	applyUpdate(property, input)
	if err := validateProperty(property); err != nil {
		return nil, err
	}

	if err := s.properties.Save(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Delete permanently removes the listing with the given id. The caller
// must be the owner. Nothing references a listing, so there is no
// cascade.
func (s *PropertyMutationService) Delete(ctx context.Context, ident Identity, id uint) error {
	if ident.Email == "" {
		return ErrUnauthenticated
	}

	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if property.OwnerEmail != ident.Email {
		return ErrForbidden
	}

	if err := s.properties.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func applyUpdate(p *models.Property, input UpdatePropertyInput) {
	if input.PropertyTitle != nil {
		p.PropertyTitle = *input.PropertyTitle
	}
	if input.PropertyType != nil {
		p.PropertyType = *input.PropertyType
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Bedrooms != nil {
		p.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		p.Bathrooms = *input.Bathrooms
	}
	if input.TotalArea != nil {
		p.TotalArea = *input.TotalArea
	}
	if input.YearBuilt != nil {
		p.YearBuilt = *input.YearBuilt
	}
	if input.Address != nil {
		p.Address = *input.Address
	}
	if input.DivisionID != nil {
		p.DivisionID = *input.DivisionID
	}
	if input.DistrictID != nil {
		p.DistrictID = *input.DistrictID
	}
	if input.ZipPostalCode != nil {
		p.ZipPostalCode = *input.ZipPostalCode
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Amenities != nil {
		p.Amenities = *input.Amenities
	}
	if input.ParkingAvailability != nil {
		p.ParkingAvailability = *input.ParkingAvailability
	}
	if input.Image != nil {
		p.Image = *input.Image
	}
}

// validateProperty checks required fields and enum values. Numeric
// fields are required to be positive; there is no further range
// validation.
func validateProperty(p *models.Property) error {
	if p.PropertyTitle == "" {
		return missingField("propertyTitle")
	}
	switch p.PropertyType {
	case models.PropertyTypeHouse, models.PropertyTypeApartment:
	default:
		return invalidField("propertyType", "propertyType must be House or Apartment")
	}
	if p.Price <= 0 {
		return missingField("price")
	}
	if p.Bedrooms <= 0 {
		return missingField("bedrooms")
	}
	if p.Bathrooms <= 0 {
		return missingField("bathrooms")
	}
	if p.TotalArea <= 0 {
		return missingField("totalArea")
	}
	if p.YearBuilt <= 0 {
		return missingField("yearBuilt")
	}
	if p.Address == "" {
		return missingField("address")
	}
	if p.DivisionID == 0 {
		return missingField("division")
	}
	if p.DistrictID == 0 {
		return missingField("district")
	}
	if p.ZipPostalCode == "" {
		return missingField("zipPostalCode")
	}
	if p.Description == "" {
		return missingField("description")
	}
	switch p.ParkingAvailability {
	case models.ParkingYes, models.ParkingNo:
	default:
		return invalidField("parkingAvailability", "parkingAvailability must be Yes or No")
	}
	if p.Image == "" {
		return missingField("image")
	}
	return nil
}
