package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ghorbari_backend/models"
)

// GormPropertyRepository stores properties through GORM.
type GormPropertyRepository struct {
	DB *gorm.DB
}

func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{DB: db}
}

func (r *GormPropertyRepository) Create(ctx context.Context, p *models.Property) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormPropertyRepository) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	var p models.Property
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPropertyRepository) Find(ctx context.Context, filter PropertyFilter) ([]models.Property, error) {
	query := r.DB.WithContext(ctx).Model(&models.Property{})

	if filter.OwnerEmail != "" {
		query = query.Where("owner_email = ?", filter.OwnerEmail)
	}
	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", filter.PropertyType)
	}
	if filter.DivisionID != 0 {
		query = query.Where("division_id = ?", filter.DivisionID)
	}
	if filter.DistrictID != 0 {
		query = query.Where("district_id = ?", filter.DistrictID)
	}

	var properties []models.Property
	if err := query.Order("created_at desc").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *GormPropertyRepository) Save(ctx context.Context, p *models.Property) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

func (r *GormPropertyRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GormReferenceRepository reads divisions and districts through GORM.
type GormReferenceRepository struct {
	DB *gorm.DB
}

func NewGormReferenceRepository(db *gorm.DB) *GormReferenceRepository {
	return &GormReferenceRepository{DB: db}
}

func (r *GormReferenceRepository) ListDivisions(ctx context.Context) ([]models.Division, error) {
	var divisions []models.Division
	if err := r.DB.WithContext(ctx).Find(&divisions).Error; err != nil {
		return nil, err
	}
	return divisions, nil
}

func (r *GormReferenceRepository) ListDistricts(ctx context.Context) ([]models.District, error) {
	var districts []models.District
	if err := r.DB.WithContext(ctx).Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

// GormSellerRepository stores seller accounts through GORM.
type GormSellerRepository struct {
	DB *gorm.DB
}

func NewGormSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{DB: db}
}

func (r *GormSellerRepository) Create(ctx context.Context, s *models.Seller) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *GormSellerRepository) FindByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var s models.Seller
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormSellerRepository) Exists(ctx context.Context, email, username string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Seller{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormBuyerRepository stores buyer accounts through GORM.
type GormBuyerRepository struct {
	DB *gorm.DB
}

func NewGormBuyerRepository(db *gorm.DB) *GormBuyerRepository {
	return &GormBuyerRepository{DB: db}
}

func (r *GormBuyerRepository) Create(ctx context.Context, b *models.Buyer) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *GormBuyerRepository) FindByEmail(ctx context.Context, email string) (*models.Buyer, error) {
	var b models.Buyer
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *GormBuyerRepository) Exists(ctx context.Context, email, username string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Buyer{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
