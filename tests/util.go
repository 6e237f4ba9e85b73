// Package tests holds shared helpers for the API test suites.
package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"spotapi/config"
	"spotapi/database"
	"spotapi/middleware"
	"spotapi/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Setup loads config and points the global database at a fresh in-memory DB.
func Setup(t *testing.T) {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()
}

// CreateUser inserts a user with the given role and password "password".
func CreateUser(t *testing.T, name, email, role string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), config.AppConfig.SaltRound)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := database.Database.Db.Create(&user).Error; err != nil {
		t.Fatalf("creating user: %v", err)
	}
	return user
}

// CreateCourse inserts a catalog entry.
func CreateCourse(t *testing.T, title string, price float64) models.Course {
	t.Helper()

	course := models.Course{
		Title:       title,
		Description: "Test course description",
		Price:       price,
	}
	if err := database.Database.Db.Create(&course).Error; err != nil {
		t.Fatalf("creating course: %v", err)
	}
	return course
}

// Token returns a bearer token for the user.
func Token(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return token
}

// Request performs a JSON request against the app and returns the response.
func Request(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// Decode reads the response body into out.
func Decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}
