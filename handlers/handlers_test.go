package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"ghorbari_backend/models"
	"ghorbari_backend/repository"
	"ghorbari_backend/services"
	"ghorbari_backend/utils"
)

type testEnv struct {
	app        *fiber.App
	properties *repository.MemoryPropertyRepository
	sellers    *repository.MemorySellerRepository
	buyers     *repository.MemoryBuyerRepository
}

// setupTestApp wires the full route table against in-memory
// repositories, mirroring main.go.
func setupTestApp(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	properties := repository.NewMemoryPropertyRepository()
	reference := repository.NewMemoryReferenceRepository(
		[]models.Division{
			{ID: 1, Name: "Dhaka"},
			{ID: 2, Name: "Chattogram"},
		},
		[]models.District{
			{ID: 1, Name: "Gazipur", DivisionID: 1},
			{ID: 2, Name: "Tangail", DivisionID: 1},
			{ID: 3, Name: "Cumilla", DivisionID: 2},
		},
	)
	sellers := repository.NewMemorySellerRepository()
	buyers := repository.NewMemoryBuyerRepository()

	queryService := services.NewPropertyQueryService(properties, reference)
	mutationService := services.NewPropertyMutationService(properties, sellers)
	referenceService := services.NewReferenceService(reference)

	authHandler := NewAuthHandler(sellers, buyers)
	propertyHandler := NewPropertyHandler(queryService, mutationService)
	referenceHandler := NewReferenceHandler(referenceService)

	app := fiber.New()
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/:role/register", authHandler.Register)
	auth.Post("/:role/login", authHandler.Login)
	auth.Post("/:role/exists", authHandler.Exists)

	api.Use(utils.AuthMiddleware)
	api.Get("/divisions", referenceHandler.GetDivisions)
	api.Get("/districts", referenceHandler.GetDistricts)
	api.Get("/properties", propertyHandler.GetProperties)

	seller := api.Group("/seller", utils.RequireSeller)
	seller.Get("/properties", propertyHandler.GetMyProperties)
	seller.Post("/properties", propertyHandler.CreateProperty)
	seller.Put("/properties/:id", propertyHandler.UpdateProperty)
	seller.Delete("/properties/:id", propertyHandler.DeleteProperty)

	return &testEnv{app: app, properties: properties, sellers: sellers, buyers: buyers}
}

func (env *testEnv) addSeller(t *testing.T, email, fullname, phone string) {
	t.Helper()
	err := env.sellers.Create(context.Background(), &models.Seller{
		Fullname: fullname,
		Username: email,
		Email:    email,
		Phone:    phone,
		Password: "hashed",
		Address:  "Dhanmondi, Dhaka",
		Gender:   "Male",
		Country:  "Bangladesh",
	})
	require.NoError(t, err)
}

func tokenFor(t *testing.T, email, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(email, role)
	require.NoError(t, err)
	return token
}

func (env *testEnv) request(t *testing.T, method, target, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func createPayload() map[string]interface{} {
	return map[string]interface{}{
		"propertyTitle":       "Lakeview Duplex",
		"propertyType":        "House",
		"price":               5000000,
		"bedrooms":            3,
		"bathrooms":           2,
		"totalArea":           1800,
		"yearBuilt":           2015,
		"address":             "House 12, Road 5, Uttara",
		"division":            1,
		"district":            1,
		"zipPostalCode":       "1230",
		"description":         "South-facing duplex beside the lake",
		"amenities":           map[string]bool{"cctv": true, "security": true},
		"parkingAvailability": "Yes",
		"image":               "/uploads/properties/a.jpg",
	}
}
