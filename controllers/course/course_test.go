package courseController_test

import (
	"fmt"
	"net/http"
	"testing"

	"spotapi/models"
	courseRoutes "spotapi/routers/courseRoutes"
	"spotapi/tests"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	tests.Setup(t)
	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func TestCatalogIsPublic(t *testing.T) {
	app := setupApp(t)
	course := tests.CreateCourse(t, "Advanced Technical Analysis", 299)

	list := tests.Request(t, app, http.MethodGet, "/api/courses", nil, "")
	require.Equal(t, http.StatusOK, list.StatusCode)

	var courses []models.Course
	tests.Decode(t, list, &courses)
	require.Len(t, courses, 1)

	single := tests.Request(t, app, http.MethodGet, fmt.Sprintf("/api/courses/%d", course.ID), nil, "")
	require.Equal(t, http.StatusOK, single.StatusCode)

	var found models.Course
	tests.Decode(t, single, &found)
	assert.Equal(t, "Advanced Technical Analysis", found.Title)
}

func TestCreateCourse(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")

	payload := fiber.Map{
		"title":       "Options Strategies",
		"description": "Spreads, straddles and position sizing.",
		"price":       499,
		"instructor":  "Rahul Verma",
		"duration":    "6 weeks",
		"level":       "Advanced",
		"category":    "Options",
	}

	forbidden := tests.Request(t, app, http.MethodPost, "/api/courses", payload, tests.Token(t, user))
	assert.Equal(t, http.StatusForbidden, forbidden.StatusCode)

	resp := tests.Request(t, app, http.MethodPost, "/api/courses", payload, tests.Token(t, admin))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var course models.Course
	tests.Decode(t, resp, &course)
	assert.Equal(t, "Options Strategies", course.Title)
	assert.Equal(t, float64(499), course.Price)
}

func TestCreateCourseValidation(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	token := tests.Token(t, admin)

	// Missing price
	missing := tests.Request(t, app, http.MethodPost, "/api/courses", fiber.Map{
		"title":       "Options Strategies",
		"description": "Spreads and straddles.",
	}, token)
	assert.Equal(t, http.StatusBadRequest, missing.StatusCode)

	negative := tests.Request(t, app, http.MethodPost, "/api/courses", fiber.Map{
		"title":       "Options Strategies",
		"description": "Spreads and straddles.",
		"price":       -10,
	}, token)
	assert.Equal(t, http.StatusBadRequest, negative.StatusCode)
}

func TestUpdateCourse(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	course := tests.CreateCourse(t, "Forex Trading Mastery", 399)
	token := tests.Token(t, admin)

	resp := tests.Request(t, app, http.MethodPut, fmt.Sprintf("/api/courses/%d", course.ID), fiber.Map{
		"price": 349,
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Course
	tests.Decode(t, resp, &updated)
	assert.Equal(t, float64(349), updated.Price)
	assert.Equal(t, "Forex Trading Mastery", updated.Title)
}

func TestDeleteCourse(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	course := tests.CreateCourse(t, "Cryptocurrency Trading", 249)
	token := tests.Token(t, admin)

	del := tests.Request(t, app, http.MethodDelete, fmt.Sprintf("/api/courses/%d", course.ID), nil, token)
	require.Equal(t, http.StatusOK, del.StatusCode)

	missing := tests.Request(t, app, http.MethodGet, fmt.Sprintf("/api/courses/%d", course.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
