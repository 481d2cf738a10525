package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerme/offerme-backend/internal/models"
	"github.com/offerme/offerme-backend/internal/storage"
)

func newAdminApp(store storage.Store) *fiber.App {
	app := fiber.New()
	handler := NewAdminHandler(store)
	app.Get("/admin/profile", handler.GetProfile)
	app.Post("/admin/profile", handler.UpdateProfile)
	return app
}

func TestGetProfileFallsBackToDefault(t *testing.T) {
	app := newAdminApp(storage.NewMemoryStore())

	req := httptest.NewRequest("GET", "/admin/profile", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, models.DefaultProfile().CompanyName, body["company_name"])
}

func TestUpdateProfileReplacesDocument(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.SaveProfile(&models.BotProfile{
		CompanyName: "Old Name",
		Description: "old description",
	}))
	app := newAdminApp(store)

	req := httptest.NewRequest("POST", "/admin/profile",
		strings.NewReader(`{"company_name":"Offer ME"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Full replacement, no merge of old fields
	profile, err := store.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Offer ME", profile.CompanyName)
	assert.Equal(t, "", profile.Description)
}

func TestUpdateProfileRejectsEmptyBody(t *testing.T) {
	store := storage.NewMemoryStore()
	app := newAdminApp(store)

	req := httptest.NewRequest("POST", "/admin/profile", nil)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// No state change
	_, err = store.GetProfile()
	assert.Error(t, err)
}

func TestUpdateProfileRejectsMalformedJSON(t *testing.T) {
	app := newAdminApp(storage.NewMemoryStore())

	req := httptest.NewRequest("POST", "/admin/profile", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProfileRejectsEmptyDocument(t *testing.T) {
	app := newAdminApp(storage.NewMemoryStore())

	req := httptest.NewRequest("POST", "/admin/profile", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
