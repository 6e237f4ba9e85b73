package settingsController_test

import (
	"net/http"
	"testing"

	"spotapi/database"
	"spotapi/models"
	settingsRoutes "spotapi/routers/settingsRoutes"
	"spotapi/tests"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	tests.Setup(t)
	app := fiber.New()
	settingsRoutes.SetupSettingsRoutes(app)
	return app
}

func settingsCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.Database.Db.Model(&models.Settings{}).Count(&count).Error)
	return count
}

func TestGetSettingsLazyCreate(t *testing.T) {
	app := setupApp(t)

	resp := tests.Request(t, app, http.MethodGet, "/api/settings", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var settings models.Settings
	tests.Decode(t, resp, &settings)
	assert.Equal(t, "SPOT TRADING", settings.CompanyName)
	assert.True(t, settings.IsActive)
	assert.Equal(t, int64(1), settingsCount(t))

	// Repeated reads never create a second row
	again := tests.Request(t, app, http.MethodGet, "/api/settings", nil, "")
	require.Equal(t, http.StatusOK, again.StatusCode)
	assert.Equal(t, int64(1), settingsCount(t))
}

func TestUpdateSettings(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	token := tests.Token(t, admin)

	resp := tests.Request(t, app, http.MethodPut, "/api/settings", fiber.Map{
		"companyName":  "SPOT TRADING PRO",
		"contactEmail": "hello@spottrading.com",
		"socialLinks":  fiber.Map{"twitter": "https://twitter.com/spottrading"},
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var settings models.Settings
	tests.Decode(t, resp, &settings)
	assert.Equal(t, "SPOT TRADING PRO", settings.CompanyName)
	assert.Equal(t, "hello@spottrading.com", settings.ContactEmail)
	assert.Equal(t, int64(1), settingsCount(t))

	// Updates merge; untouched fields survive the next partial write
	second := tests.Request(t, app, http.MethodPut, "/api/settings", fiber.Map{
		"contactPhone": "+91 9000000000",
	}, token)
	require.Equal(t, http.StatusOK, second.StatusCode)

	var merged models.Settings
	tests.Decode(t, second, &merged)
	assert.Equal(t, "SPOT TRADING PRO", merged.CompanyName)
	assert.Equal(t, "+91 9000000000", merged.ContactPhone)
	assert.Equal(t, int64(1), settingsCount(t))
}

func TestUpdateSettingsRequiresAdmin(t *testing.T) {
	app := setupApp(t)
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")

	resp := tests.Request(t, app, http.MethodPut, "/api/settings", fiber.Map{
		"companyName": "HIJACKED",
	}, tests.Token(t, user))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
