package userController_test

import (
	"fmt"
	"net/http"
	"testing"

	"spotapi/database"
	"spotapi/models"
	userRoutes "spotapi/routers/userRoutes"
	"spotapi/tests"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	tests.Setup(t)
	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app
}

func TestGetAllUsersAdminOnly(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")

	forbidden := tests.Request(t, app, http.MethodGet, "/api/users", nil, tests.Token(t, user))
	assert.Equal(t, http.StatusForbidden, forbidden.StatusCode)

	allowed := tests.Request(t, app, http.MethodGet, "/api/users", nil, tests.Token(t, admin))
	require.Equal(t, http.StatusOK, allowed.StatusCode)

	var users []models.User
	tests.Decode(t, allowed, &users)
	assert.Len(t, users, 2)
}

func TestGetUserByID(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	token := tests.Token(t, admin)

	resp := tests.Request(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var found models.User
	tests.Decode(t, resp, &found)
	assert.Equal(t, "a@x.com", found.Email)

	missing := tests.Request(t, app, http.MethodGet, "/api/users/9999", nil, token)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestUpdateUserRole(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	token := tests.Token(t, admin)
	path := fmt.Sprintf("/api/users/%d/role", user.ID)

	invalid := tests.Request(t, app, http.MethodPut, path, fiber.Map{
		"role": "superuser",
	}, token)
	assert.Equal(t, http.StatusBadRequest, invalid.StatusCode)

	resp := tests.Request(t, app, http.MethodPut, path, fiber.Map{
		"role": "admin",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	tests.Decode(t, resp, &updated)
	assert.Equal(t, "admin", updated.Role)
}

func TestDeleteUser(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	token := tests.Token(t, admin)

	del := tests.Request(t, app, http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), nil, token)
	require.Equal(t, http.StatusOK, del.StatusCode)

	missing := tests.Request(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestDeleteUserClearsPurchasedSet(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	course := tests.CreateCourse(t, "Advanced Technical Analysis", 299)
	token := tests.Token(t, admin)

	db := database.Database.Db
	require.NoError(t, db.Model(&user).Association("PurchasedCourses").Append(&course))

	del := tests.Request(t, app, http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), nil, token)
	require.Equal(t, http.StatusOK, del.StatusCode)

	var joinRows int64
	require.NoError(t, db.Table("user_purchased_courses").
		Where("user_id = ?", user.ID).Count(&joinRows).Error)
	assert.Equal(t, int64(0), joinRows)

	// The course itself survives the account deletion
	var courses int64
	require.NoError(t, db.Model(&models.Course{}).Where("id = ?", course.ID).Count(&courses).Error)
	assert.Equal(t, int64(1), courses)
}

func TestRecentUsersAndTotals(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	tests.CreateUser(t, "Alice", "a@x.com", "user")
	tests.CreateUser(t, "Bob", "b@x.com", "user")
	token := tests.Token(t, admin)

	recent := tests.Request(t, app, http.MethodGet, "/api/users/recent?limit=2", nil, token)
	require.Equal(t, http.StatusOK, recent.StatusCode)

	var users []models.User
	tests.Decode(t, recent, &users)
	assert.Len(t, users, 2)

	stats := tests.Request(t, app, http.MethodGet, "/api/users/stats/total", nil, token)
	require.Equal(t, http.StatusOK, stats.StatusCode)

	var total struct {
		Total int64 `json:"total"`
	}
	tests.Decode(t, stats, &total)
	assert.Equal(t, int64(3), total.Total)
}
