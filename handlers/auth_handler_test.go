package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerPayload() map[string]interface{} {
	return map[string]interface{}{
		"fullname": "Rahim Uddin",
		"username": "rahim",
		"email":    "rahim@example.com",
		"phone":    "01711111111",
		"address":  "Dhanmondi, Dhaka",
		"password": "password123",
		"gender":   "Male",
		"country":  "Bangladesh",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestApp(t)

	resp := env.request(t, http.MethodPost, "/api/auth/seller/register", "", registerPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "User registered successfully", body["message"])

	// Duplicate registration is rejected.
	resp = env.request(t, http.MethodPost, "/api/auth/seller/register", "", registerPayload())
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodPost, "/api/auth/seller/login", "", map[string]interface{}{
		"email":    "rahim@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "seller", user["role"])

	resp = env.request(t, http.MethodPost, "/api/auth/seller/login", "", map[string]interface{}{
		"email":    "rahim@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRegisterRequiresAllFields(t *testing.T) {
	env := setupTestApp(t)

	payload := registerPayload()
	delete(payload, "phone")

	resp := env.request(t, http.MethodPost, "/api/auth/buyer/register", "", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "All fields are necessary", body["message"])
}

func TestExistsEndpoint(t *testing.T) {
	env := setupTestApp(t)

	resp := env.request(t, http.MethodPost, "/api/auth/seller/exists", "", map[string]interface{}{
		"email":    "rahim@example.com",
		"username": "rahim",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["user"])

	resp = env.request(t, http.MethodPost, "/api/auth/seller/register", "", registerPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodPost, "/api/auth/seller/exists", "", map[string]interface{}{
		"email":    "rahim@example.com",
		"username": "rahim",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, true, body["user"])
}

func TestUnknownRoleIs404(t *testing.T) {
	env := setupTestApp(t)

	resp := env.request(t, http.MethodPost, "/api/auth/admin/register", "", registerPayload())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
