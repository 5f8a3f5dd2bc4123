package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio-backend/database"
	"portfolio-backend/models"
)

const testJWTSecret = "test-secret"

func setupTestDB(t *testing.T) (*gorm.DB, database.Database) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db, database.New(db)
}

func setupTestRouter(db database.Database) http.Handler {
	return newRouter(db, withConfig(map[string]string{
		"JWT_SECRET":       testJWTSecret,
		"ACCEPTED_ORIGINS": "http://localhost:3000",
	}))
}

func signTestToken(t *testing.T, admin bool) string {
	t.Helper()

	claims := callerClaims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "tester",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// doRequest runs a request through the full router. A non-empty token is
// sent as a bearer credential; a nil body sends no payload.
func doRequest(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to decode response body %q: %v", recorder.Body.String(), err)
	}
}

func TestRequestIDEchoedInResponse(t *testing.T) {
	_, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	recorder := doRequest(t, router, http.MethodGet, "/categories", nil, "")
	if recorder.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header on the response")
	}

	// A caller-supplied id is echoed back unchanged
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("X-Request-Id", "trace-me")
	echo := httptest.NewRecorder()
	router.ServeHTTP(echo, req)
	if got := echo.Header().Get("X-Request-Id"); got != "trace-me" {
		t.Errorf("expected X-Request-Id %q, got %q", "trace-me", got)
	}
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Description: name + " skills"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

func createTestSkill(t *testing.T, db *gorm.DB, name string, categoryID uint) *models.Skill {
	t.Helper()

	skill := &models.Skill{
		Name:        name,
		CategoryID:  categoryID,
		Description: name + " description",
		Icon:        "code",
	}
	if err := db.Create(skill).Error; err != nil {
		t.Fatalf("failed to create skill: %v", err)
	}
	return skill
}

func createTestTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()

	tag := &models.Tag{Name: name}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create tag: %v", err)
	}
	return tag
}

func createTestProfile(t *testing.T, db *gorm.DB) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		Name:        "Ada Lovelace",
		Title:       "Software Engineer",
		Description: "I build things.",
		Github:      "https://github.com/ada",
		Email:       "ada@example.com",
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return profile
}

func createTestProject(t *testing.T, db *gorm.DB, title string, technologies []models.Skill) *models.Project {
	t.Helper()

	project := &models.Project{
		Title:        title,
		Description:  title + " description",
		DemoURL:      "https://example.com/demo",
		GithubURL:    "https://github.com/ada/demo",
		Technologies: technologies,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	return project
}

func createTestBlogPost(t *testing.T, db *gorm.DB, title string, tags []models.Tag) *models.BlogPost {
	t.Helper()

	post := &models.BlogPost{
		Title:   title,
		Content: "Content of " + title,
		Tags:    tags,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create blog post: %v", err)
	}
	return post
}

func createTestContact(t *testing.T, db *gorm.DB, name string) *models.Contact {
	t.Helper()

	contact := &models.Contact{
		Name:    name,
		Email:   "visitor@example.com",
		Message: "Hello from " + name,
	}
	if err := db.Create(contact).Error; err != nil {
		t.Fatalf("failed to create contact: %v", err)
	}
	return contact
}
