package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghorbari_backend/models"
	"ghorbari_backend/repository"
)

var sellerIdent = Identity{Email: "rahim@example.com", Role: RoleSeller}

func testSellerRepo(t *testing.T) *repository.MemorySellerRepository {
	t.Helper()
	sellers := repository.NewMemorySellerRepository()
	err := sellers.Create(context.Background(), &models.Seller{
		Fullname: "Rahim Uddin",
		Username: "rahim",
		Email:    "rahim@example.com",
		Phone:    "01711111111",
		Password: "hashed",
		Address:  "Dhanmondi, Dhaka",
		Gender:   "Male",
		Country:  "Bangladesh",
	})
	require.NoError(t, err)
	return sellers
}

func validCreateInput() CreatePropertyInput {
	return CreatePropertyInput{
		PropertyTitle:       "Lakeview Duplex",
		PropertyType:        models.PropertyTypeHouse,
		Price:               5000000,
		Bedrooms:            3,
		Bathrooms:           2,
		TotalArea:           1800,
		YearBuilt:           2015,
		Address:             "House 12, Road 5, Uttara",
		DivisionID:          1,
		DistrictID:          1,
		ZipPostalCode:       "1230",
		Description:         "South-facing duplex beside the lake",
		Amenities:           models.Amenities{CCTV: true, Security: true},
		ParkingAvailability: models.ParkingYes,
		Image:               "/uploads/properties/a.jpg",
	}
}

func newMutationFixture(t *testing.T) (*PropertyMutationService, *repository.MemoryPropertyRepository) {
	t.Helper()
	properties := repository.NewMemoryPropertyRepository()
	return NewPropertyMutationService(properties, testSellerRepo(t)), properties
}

func TestCreateReturnsRecordWithIDAndTimestamps(t *testing.T) {
	svc, _ := newMutationFixture(t)

	input := validCreateInput()
	property, err := svc.Create(context.Background(), sellerIdent, input)
	require.NoError(t, err)

	assert.NotZero(t, property.ID)
	assert.False(t, property.CreatedAt.IsZero())
	assert.False(t, property.UpdatedAt.IsZero())
	assert.Equal(t, input.PropertyTitle, property.PropertyTitle)
	assert.Equal(t, input.Price, property.Price)
	assert.Equal(t, input.Amenities, property.Amenities)
	assert.Equal(t, sellerIdent.Email, property.OwnerEmail)
}

func TestCreateSnapshotsSellerContact(t *testing.T) {
	svc, _ := newMutationFixture(t)

	property, err := svc.Create(context.Background(), sellerIdent, validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, "Rahim Uddin", property.ContactName)
	assert.Equal(t, "rahim@example.com", property.Email)
	assert.Equal(t, "01711111111", property.Phone)
}

func TestCreateRequiresDivisionAndDistrict(t *testing.T) {
	svc, _ := newMutationFixture(t)
	ctx := context.Background()

	input := validCreateInput()
	input.DivisionID = 0
	_, err := svc.Create(ctx, sellerIdent, input)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "division", validation.Field)

	input = validCreateInput()
	input.DistrictID = 0
	_, err = svc.Create(ctx, sellerIdent, input)
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "district", validation.Field)
}

func TestCreateRejectsInvalidEnums(t *testing.T) {
	svc, _ := newMutationFixture(t)
	ctx := context.Background()

	input := validCreateInput()
	input.PropertyType = "Castle"
	_, err := svc.Create(ctx, sellerIdent, input)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "propertyType", validation.Field)

	input = validCreateInput()
	input.ParkingAvailability = "Maybe"
	_, err = svc.Create(ctx, sellerIdent, input)
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "parkingAvailability", validation.Field)
}

func TestCreateRequiresIdentity(t *testing.T) {
	svc, _ := newMutationFixture(t)

	_, err := svc.Create(context.Background(), Identity{}, validCreateInput())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUpdateAppliesPartialChanges(t *testing.T) {
	svc, _ := newMutationFixture(t)
	ctx := context.Background()

	property, err := svc.Create(ctx, sellerIdent, validCreateInput())
	require.NoError(t, err)

	newPrice := 6500000.0
	updated, err := svc.Update(ctx, sellerIdent, property.ID, UpdatePropertyInput{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, newPrice, updated.Price)
	assert.Equal(t, property.PropertyTitle, updated.PropertyTitle)
	assert.Equal(t, property.ContactName, updated.ContactName)
}

func TestUpdateRevalidatesSuppliedFields(t *testing.T) {
	svc, _ := newMutationFixture(t)
	ctx := context.Background()

	property, err := svc.Create(ctx, sellerIdent, validCreateInput())
	require.NoError(t, err)

	badType := "Castle"
	_, err = svc.Update(ctx, sellerIdent, property.ID, UpdatePropertyInput{PropertyType: &badType})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "propertyType", validation.Field)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	svc, _ := newMutationFixture(t)

	_, err := svc.Update(context.Background(), sellerIdent, 12345, UpdatePropertyInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateEnforcesOwnership(t *testing.T) {
	svc, _ := newMutationFixture(t)
	ctx := context.Background()

	property, err := svc.Create(ctx, sellerIdent, validCreateInput())
	require.NoError(t, err)

	intruder := Identity{Email: "karima@example.com", Role: RoleSeller}
	_, err = svc.Update(ctx, intruder, property.ID, UpdatePropertyInput{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	svc, _ := newMutationFixture(t)
	ctx := context.Background()

	property, err := svc.Create(ctx, sellerIdent, validCreateInput())
	require.NoError(t, err)

	intruder := Identity{Email: "karima@example.com", Role: RoleSeller}
	assert.ErrorIs(t, svc.Delete(ctx, intruder, property.ID), ErrForbidden)
}

func TestDeleteUnknownIDReturnsNotFound(t *testing.T) {
	svc, _ := newMutationFixture(t)

	assert.ErrorIs(t, svc.Delete(context.Background(), sellerIdent, 12345), ErrNotFound)
}

func TestDeleteThenUpdateReturnsNotFound(t *testing.T) {
	svc, _ := newMutationFixture(t)
	ctx := context.Background()

	property, err := svc.Create(ctx, sellerIdent, validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, sellerIdent, property.ID))

	_, err = svc.Update(ctx, sellerIdent, property.ID, UpdatePropertyInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateThenListResolvesDivision(t *testing.T) {
	ctx := context.Background()
	properties := repository.NewMemoryPropertyRepository()
	mutation := NewPropertyMutationService(properties, testSellerRepo(t))
	query := NewPropertyQueryService(properties, testReferenceRepo())

	input := validCreateInput()
	input.Price = 500000
	created, err := mutation.Create(ctx, sellerIdent, input)
	require.NoError(t, err)

	views, status, err := query.List(ctx, sellerIdent.Email, ListFilters{DivisionID: input.DivisionID})
	require.NoError(t, err)
	assert.Equal(t, ListOK, status)
	require.Len(t, views, 1)
	assert.Equal(t, created.ID, views[0].ID)
	assert.Equal(t, "Dhaka", views[0].Division.Name)
}
