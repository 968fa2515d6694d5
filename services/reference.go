package services

import (
	"context"

	"ghorbari_backend/models"
	"ghorbari_backend/repository"
)

// ReferenceService serves the division and district lookup tables.
type ReferenceService struct {
	reference repository.ReferenceRepository
}

func NewReferenceService(reference repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{reference: reference}
}

// Divisions returns the full division table.
func (s *ReferenceService) Divisions(ctx context.Context) ([]models.Division, error) {
	return s.reference.ListDivisions(ctx)
}

// Districts returns the full district table.
func (s *ReferenceService) Districts(ctx context.Context) ([]models.District, error) {
	return s.reference.ListDistricts(ctx)
}

// DistrictsOf returns the districts belonging to the given division. A
// zero divisionID returns all districts.
func DistrictsOf(divisionID uint, districts []models.District) []models.District {
	if divisionID == 0 {
		return districts
	}
	matched := make([]models.District, 0)
	for _, d := range districts {
		if d.DivisionID == divisionID {
			matched = append(matched, d)
		}
	}
	return matched
}
