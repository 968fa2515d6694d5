// Package repository defines the persistence interfaces the services and
// handlers depend on, together with a GORM-backed implementation and an
// in-memory one used in tests.
package repository

import (
	"context"
	"errors"

	"ghorbari_backend/models"
)

// ErrNotFound is returned when a record with the requested id or key does
// not exist, regardless of the backing store.
var ErrNotFound = errors.New("record not found")

// PropertyFilter narrows a property query. Zero values mean "no
// constraint"; all constraints set are applied conjunctively.
type PropertyFilter struct {
	OwnerEmail   string
	PropertyType string
	DivisionID   uint
	DistrictID   uint
}

// PropertyRepository persists property listings.
type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	FindByID(ctx context.Context, id uint) (*models.Property, error)
	Find(ctx context.Context, filter PropertyFilter) ([]models.Property, error)
	Save(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id uint) error
}

// ReferenceRepository reads the division and district lookup tables.
// Both tables are small (tens of rows) and returned whole.
type ReferenceRepository interface {
	ListDivisions(ctx context.Context) ([]models.Division, error)
	ListDistricts(ctx context.Context) ([]models.District, error)
}

// SellerRepository persists seller accounts.
type SellerRepository interface {
	Create(ctx context.Context, s *models.Seller) error
	FindByEmail(ctx context.Context, email string) (*models.Seller, error)
	Exists(ctx context.Context, email, username string) (bool, error)
}

// BuyerRepository persists buyer accounts.
type BuyerRepository interface {
	Create(ctx context.Context, b *models.Buyer) error
	FindByEmail(ctx context.Context, email string) (*models.Buyer, error)
	Exists(ctx context.Context, email, username string) (bool, error)
}
