package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
)

func TestListProjectsEmbedsTechnologies(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	backend := createTestCategory(t, db, "Backend")
	goSkill := createTestSkill(t, db, "Go", backend.ID)
	pgSkill := createTestSkill(t, db, "Postgres", backend.ID)

	createTestProject(t, db, "URL Shortener", []models.Skill{*goSkill, *pgSkill})

	recorder := doRequest(t, router, http.MethodGet, "/projects", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var projects []ProjectResource
	decodeBody(t, recorder, &projects)

	require.Len(t, projects, 1)
	project := projects[0]

	assert.Equal(t, "URL Shortener", project.Title)
	assert.Equal(t, "url-shortener", project.Slug)

	// Technologies are full skill representations, not bare ids
	require.Len(t, project.Technologies, 2)
	assert.Equal(t, "Go", project.Technologies[0].Name)
	assert.Equal(t, backend.ID, project.Technologies[0].Category)
	assert.Equal(t, "Backend", project.Technologies[0].CategoryName)
	assert.NotEmpty(t, project.Technologies[0].Description)
}

func TestGetProjectBySlug(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	createTestProject(t, db, "URL Shortener", nil)

	recorder := doRequest(t, router, http.MethodGet, "/projects/url-shortener", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var project ProjectResource
	decodeBody(t, recorder, &project)

	assert.Equal(t, "URL Shortener", project.Title)
	assert.Equal(t, "https://example.com/demo", project.DemoURL)
	assert.Empty(t, project.Technologies)
}

func TestGetProjectNotFound(t *testing.T) {
	_, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	recorder := doRequest(t, router, http.MethodGet, "/projects/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
