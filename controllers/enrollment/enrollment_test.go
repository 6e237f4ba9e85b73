package enrollmentController_test

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	enrollmentController "spotapi/controllers/enrollment"
	"spotapi/database"
	"spotapi/models"
	enrollmentRoutes "spotapi/routers/enrollmentRoutes"
	"spotapi/tests"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	tests.Setup(t)
	app := fiber.New()
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	return app
}

func TestCreateEnrollment(t *testing.T) {
	app := setupApp(t)
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	course := tests.CreateCourse(t, "Advanced Technical Analysis", 299)
	token := tests.Token(t, user)

	resp := tests.Request(t, app, http.MethodPost, "/api/enrollments", fiber.Map{
		"courseId": course.ID,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var enrollment models.Enrollment
	tests.Decode(t, resp, &enrollment)
	assert.Equal(t, models.EnrollmentActive, enrollment.Status)
	assert.Equal(t, "Alice", enrollment.UserName)
	assert.Equal(t, "a@x.com", enrollment.UserEmail)
	assert.Equal(t, "Advanced Technical Analysis", enrollment.CourseTitle)
	assert.Equal(t, float64(299), enrollment.PricePaid)

	// The course lands in the user's purchased set
	var purchased []models.Course
	err := database.Database.Db.Model(&user).Association("PurchasedCourses").Find(&purchased)
	require.NoError(t, err)
	require.Len(t, purchased, 1)
	assert.Equal(t, course.ID, purchased[0].ID)
}

func TestCreateEnrollmentDuplicate(t *testing.T) {
	app := setupApp(t)
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	course := tests.CreateCourse(t, "Advanced Technical Analysis", 299)
	token := tests.Token(t, user)

	first := tests.Request(t, app, http.MethodPost, "/api/enrollments", fiber.Map{
		"courseId": course.ID,
	}, token)
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := tests.Request(t, app, http.MethodPost, "/api/enrollments", fiber.Map{
		"courseId": course.ID,
	}, token)
	assert.Equal(t, http.StatusBadRequest, second.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	tests.Decode(t, second, &body)
	assert.Equal(t, "Already enrolled in this course", body.Message)

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestConcurrentEnrollmentDedup(t *testing.T) {
	tests.Setup(t)
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	course := tests.CreateCourse(t, "Advanced Technical Analysis", 299)
	db := database.Database.Db

	// Identical requests racing past the pre-check must lose at the unique
	// index, not create duplicates.
	var successes int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := enrollmentController.EnrollUser(db, &user, &course, ""); err == nil {
				atomic.AddInt32(&successes, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes)

	var live int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND status <> ?",
			user.ID, course.ID, models.EnrollmentCancelled).Count(&live).Error)
	assert.Equal(t, int64(1), live)
}

func TestCreateEnrollmentCourseNotFound(t *testing.T) {
	app := setupApp(t)
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	token := tests.Token(t, user)

	resp := tests.Request(t, app, http.MethodPost, "/api/enrollments", fiber.Map{
		"courseId": 9999,
	}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReEnrollAfterCancellation(t *testing.T) {
	app := setupApp(t)
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	course := tests.CreateCourse(t, "Forex Trading Mastery", 399)
	token := tests.Token(t, user)

	first := tests.Request(t, app, http.MethodPost, "/api/enrollments", fiber.Map{
		"courseId": course.ID,
	}, token)
	require.Equal(t, http.StatusCreated, first.StatusCode)

	var enrollment models.Enrollment
	tests.Decode(t, first, &enrollment)

	err := database.Database.Db.Model(&models.Enrollment{}).
		Where("id = ?", enrollment.ID).Update("status", models.EnrollmentCancelled).Error
	require.NoError(t, err)

	// A cancelled enrollment no longer blocks a new purchase
	again := tests.Request(t, app, http.MethodPost, "/api/enrollments", fiber.Map{
		"courseId": course.ID,
	}, token)
	assert.Equal(t, http.StatusCreated, again.StatusCode)
}

func TestGetMyEnrollments(t *testing.T) {
	app := setupApp(t)
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	other := tests.CreateUser(t, "Bob", "b@x.com", "user")
	course := tests.CreateCourse(t, "Cryptocurrency Trading", 249)
	token := tests.Token(t, user)

	resp := tests.Request(t, app, http.MethodPost, "/api/enrollments", fiber.Map{
		"courseId": course.ID,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	mine := tests.Request(t, app, http.MethodGet, "/api/enrollments/my", nil, token)
	require.Equal(t, http.StatusOK, mine.StatusCode)

	var enrollments []models.Enrollment
	tests.Decode(t, mine, &enrollments)
	require.Len(t, enrollments, 1)
	assert.Equal(t, user.ID, enrollments[0].UserID)

	theirs := tests.Request(t, app, http.MethodGet, "/api/enrollments/my", nil, tests.Token(t, other))
	require.Equal(t, http.StatusOK, theirs.StatusCode)

	var none []models.Enrollment
	tests.Decode(t, theirs, &none)
	assert.Empty(t, none)
}

func TestUpdateEnrollmentStatus(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	course := tests.CreateCourse(t, "Advanced Technical Analysis", 299)
	adminToken := tests.Token(t, admin)

	create := tests.Request(t, app, http.MethodPost, "/api/enrollments", fiber.Map{
		"courseId": course.ID,
	}, tests.Token(t, user))
	require.Equal(t, http.StatusCreated, create.StatusCode)

	var enrollment models.Enrollment
	tests.Decode(t, create, &enrollment)
	path := fmt.Sprintf("/api/enrollments/%d/status", enrollment.ID)

	// Unknown status values are rejected before any lookup
	invalid := tests.Request(t, app, http.MethodPut, path, fiber.Map{
		"status": "refunded",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, invalid.StatusCode)

	completed := tests.Request(t, app, http.MethodPut, path, fiber.Map{
		"status": models.EnrollmentCompleted,
	}, adminToken)
	require.Equal(t, http.StatusOK, completed.StatusCode)

	var updated models.Enrollment
	tests.Decode(t, completed, &updated)
	assert.Equal(t, models.EnrollmentCompleted, updated.Status)

	// completed is terminal; further updates are a no-op
	noop := tests.Request(t, app, http.MethodPut, path, fiber.Map{
		"status": models.EnrollmentActive,
	}, adminToken)
	require.Equal(t, http.StatusOK, noop.StatusCode)

	var unchanged models.Enrollment
	tests.Decode(t, noop, &unchanged)
	assert.Equal(t, models.EnrollmentCompleted, unchanged.Status)
}

func TestUpdateEnrollmentStatusNotFound(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")

	resp := tests.Request(t, app, http.MethodPut, "/api/enrollments/9999/status", fiber.Map{
		"status": models.EnrollmentCompleted,
	}, tests.Token(t, admin))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEnrollmentAdminListings(t *testing.T) {
	app := setupApp(t)
	admin := tests.CreateUser(t, "Admin", "admin@x.com", "admin")
	user := tests.CreateUser(t, "Alice", "a@x.com", "user")
	course := tests.CreateCourse(t, "Advanced Technical Analysis", 299)
	adminToken := tests.Token(t, admin)

	create := tests.Request(t, app, http.MethodPost, "/api/enrollments", fiber.Map{
		"courseId": course.ID,
	}, tests.Token(t, user))
	require.Equal(t, http.StatusCreated, create.StatusCode)

	all := tests.Request(t, app, http.MethodGet, "/api/enrollments", nil, adminToken)
	require.Equal(t, http.StatusOK, all.StatusCode)

	var enrollments []models.Enrollment
	tests.Decode(t, all, &enrollments)
	assert.Len(t, enrollments, 1)

	byCourse := tests.Request(t, app, http.MethodGet,
		fmt.Sprintf("/api/enrollments/course/%d", course.ID), nil, adminToken)
	require.Equal(t, http.StatusOK, byCourse.StatusCode)

	stats := tests.Request(t, app, http.MethodGet, "/api/enrollments/stats/total", nil, adminToken)
	require.Equal(t, http.StatusOK, stats.StatusCode)

	var total struct {
		Total int64 `json:"total"`
	}
	tests.Decode(t, stats, &total)
	assert.Equal(t, int64(1), total.Total)

	// Listing endpoints are admin-scoped
	forbidden := tests.Request(t, app, http.MethodGet, "/api/enrollments", nil, tests.Token(t, user))
	assert.Equal(t, http.StatusForbidden, forbidden.StatusCode)
}
