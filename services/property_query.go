package services

import (
	"context"
	"sort"

	"ghorbari_backend/models"
	"ghorbari_backend/repository"
)

// Response messages for the three listing outcomes. Clients match on
// these strings, so they must stay stable.
const (
	MsgPropertiesFetched = "Properties fetched successfully"
	MsgNoProperties      = "No properties found"
	MsgNoFilterMatches   = "No properties found in this filter criteria"
)

// ListStatus distinguishes an empty result caused by an empty base set
// from one caused by the filters. Both are successes, not errors; the
// presentation layer decides how to react (e.g. retry without filters).
type ListStatus int

const (
	ListOK ListStatus = iota
	ListNoProperties
	ListNoFilterMatches
)

// Message returns the API response message for the status.
func (s ListStatus) Message() string {
	switch s {
	case ListNoProperties:
		return MsgNoProperties
	case ListNoFilterMatches:
		return MsgNoFilterMatches
	default:
		return MsgPropertiesFetched
	}
}

// Sort orders accepted by List.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListFilters are the optional constraints applied on top of the owner
// scope. Zero values mean "no constraint"; set constraints are combined
// conjunctively.
type ListFilters struct {
	PropertyType string
	DivisionID   uint
	DistrictID   uint
	SortOrder    string // asc, desc or empty
}

// NameRef carries a resolved display name for a division or district.
type NameRef struct {
	Name string `json:"name"`
}

// PropertyView is a property decorated with the display names of its
// division and district. A dangling reference resolves to "N/A" instead
// of failing the request.
type PropertyView struct {
	models.Property
	Division NameRef `json:"division"`
	District NameRef `json:"district"`
}

// PropertyQueryService answers read-only listing queries.
type PropertyQueryService struct {
	properties repository.PropertyRepository
	reference  repository.ReferenceRepository
}

func NewPropertyQueryService(properties repository.PropertyRepository, reference repository.ReferenceRepository) *PropertyQueryService {
	return &PropertyQueryService{properties: properties, reference: reference}
}

// List returns the properties matching ownerEmail and the given filters.
// An empty ownerEmail means all sellers (buyer-facing browse). The base
// set (owner scope alone) is consulted first so that "no listings exist"
// and "no listings match the filters" are reported as distinct statuses.
func (s *PropertyQueryService) List(ctx context.Context, ownerEmail string, filters ListFilters) ([]PropertyView, ListStatus, error) {
	base, err := s.properties.Find(ctx, repository.PropertyFilter{OwnerEmail: ownerEmail})
	if err != nil {
		return nil, ListOK, err
	}
	if len(base) == 0 {
		return []PropertyView{}, ListNoProperties, nil
	}

	matched, err := s.properties.Find(ctx, repository.PropertyFilter{
		OwnerEmail:   ownerEmail,
		PropertyType: filters.PropertyType,
		DivisionID:   filters.DivisionID,
		DistrictID:   filters.DistrictID,
	})
	if err != nil {
		return nil, ListOK, err
	}
	if len(matched) == 0 {
		return []PropertyView{}, ListNoFilterMatches, nil
	}

	switch filters.SortOrder {
	case SortAsc:
		sort.Slice(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case SortDesc:
		sort.Slice(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	}

	views, err := s.decorate(ctx, matched)
	if err != nil {
		return nil, ListOK, err
	}
	return views, ListOK, nil
}

func (s *PropertyQueryService) decorate(ctx context.Context, properties []models.Property) ([]PropertyView, error) {
	divisions, err := s.reference.ListDivisions(ctx)
	if err != nil {
		return nil, err
	}
	districts, err := s.reference.ListDistricts(ctx)
	if err != nil {
		return nil, err
	}

	divisionNames := make(map[uint]string, len(divisions))
	for _, d := range divisions {
		divisionNames[d.ID] = d.Name
	}
	districtNames := make(map[uint]string, len(districts))
	for _, d := range districts {
		districtNames[d.ID] = d.Name
	}

	views := make([]PropertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, PropertyView{
			Property: p,
			Division: resolveName(divisionNames, p.DivisionID),
			District: resolveName(districtNames, p.DistrictID),
		})
	}
	return views, nil
}

func resolveName(names map[uint]string, id uint) NameRef {
	if name, ok := names[id]; ok {
		return NameRef{Name: name}
	}
	return NameRef{Name: "N/A"}
}
