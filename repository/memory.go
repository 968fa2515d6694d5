package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"ghorbari_backend/models"
)

// MemoryPropertyRepository is an in-memory PropertyRepository used by
// tests and local development without a database.
type MemoryPropertyRepository struct {
	mu         sync.RWMutex
	properties map[uint]models.Property
	nextID     uint
}

func NewMemoryPropertyRepository() *MemoryPropertyRepository {
	return &MemoryPropertyRepository{
		properties: make(map[uint]models.Property),
		nextID:     1,
	}
}

func (r *MemoryPropertyRepository) Create(_ context.Context, p *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.properties[p.ID] = *p
	return nil
}

func (r *MemoryPropertyRepository) FindByID(_ context.Context, id uint) (*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.properties[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryPropertyRepository) Find(_ context.Context, filter PropertyFilter) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Property, 0)
	for _, p := range r.properties {
		if filter.OwnerEmail != "" && p.OwnerEmail != filter.OwnerEmail {
			continue
		}
		if filter.PropertyType != "" && p.PropertyType != filter.PropertyType {
			continue
		}
		if filter.DivisionID != 0 && p.DivisionID != filter.DivisionID {
			continue
		}
		if filter.DistrictID != 0 && p.DistrictID != filter.DistrictID {
			continue
		}
		matched = append(matched, p)
	}
	// Newest first, matching the GORM implementation.
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *MemoryPropertyRepository) Save(_ context.Context, p *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[p.ID]; !ok {
		return ErrNotFound
	}
	p.UpdatedAt = time.Now()
	r.properties[p.ID] = *p
	return nil
}

func (r *MemoryPropertyRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[id]; !ok {
		return ErrNotFound
	}
	delete(r.properties, id)
	return nil
}

// MemoryReferenceRepository serves a fixed set of divisions and districts.
type MemoryReferenceRepository struct {
	mu        sync.RWMutex
	divisions []models.Division
	districts []models.District
}

func NewMemoryReferenceRepository(divisions []models.Division, districts []models.District) *MemoryReferenceRepository {
	return &MemoryReferenceRepository{divisions: divisions, districts: districts}
}

func (r *MemoryReferenceRepository) ListDivisions(_ context.Context) ([]models.Division, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Division, len(r.divisions))
	copy(out, r.divisions)
	return out, nil
}

func (r *MemoryReferenceRepository) ListDistricts(_ context.Context) ([]models.District, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.District, len(r.districts))
	copy(out, r.districts)
	return out, nil
}

// MemorySellerRepository is an in-memory SellerRepository.
type MemorySellerRepository struct {
	mu      sync.RWMutex
	sellers map[string]models.Seller // keyed by email
	nextID  uint
}

func NewMemorySellerRepository() *MemorySellerRepository {
	return &MemorySellerRepository{
		sellers: make(map[string]models.Seller),
		nextID:  1,
	}
}

func (r *MemorySellerRepository) Create(_ context.Context, s *models.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	r.sellers[s.Email] = *s
	return nil
}

func (r *MemorySellerRepository) FindByEmail(_ context.Context, email string) (*models.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sellers[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *MemorySellerRepository) Exists(_ context.Context, email, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.sellers[email]; ok {
		return true, nil
	}
	for _, s := range r.sellers {
		if s.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// MemoryBuyerRepository is an in-memory BuyerRepository.
type MemoryBuyerRepository struct {
	mu     sync.RWMutex
	buyers map[string]models.Buyer // keyed by email
	nextID uint
}

func NewMemoryBuyerRepository() *MemoryBuyerRepository {
	return &MemoryBuyerRepository{
		buyers: make(map[string]models.Buyer),
		nextID: 1,
	}
}

func (r *MemoryBuyerRepository) Create(_ context.Context, b *models.Buyer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextID
	r.nextID++
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.buyers[b.Email] = *b
	return nil
}

func (r *MemoryBuyerRepository) FindByEmail(_ context.Context, email string) (*models.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.buyers[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *MemoryBuyerRepository) Exists(_ context.Context, email, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.buyers[email]; ok {
		return true, nil
	}
	for _, b := range r.buyers {
		if b.Username == username {
			return true, nil
		}
	}
	return false, nil
}
