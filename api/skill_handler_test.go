package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
)

func TestListSkillsGroupedByCategoryName(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	backend := createTestCategory(t, db, "Backend")
	frontend := createTestCategory(t, db, "Frontend")

	createTestSkill(t, db, "Go", backend.ID)
	createTestSkill(t, db, "React", frontend.ID)
	createTestSkill(t, db, "Postgres", backend.ID)

	recorder := doRequest(t, router, http.MethodGet, "/skills", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var grouped map[string][]SkillResource
	decodeBody(t, recorder, &grouped)

	require.Len(t, grouped, 2)
	require.Len(t, grouped["Backend"], 2)
	require.Len(t, grouped["Frontend"], 1)

	assert.Equal(t, "Go", grouped["Backend"][0].Name)
	assert.Equal(t, "Postgres", grouped["Backend"][1].Name)
	assert.Equal(t, "React", grouped["Frontend"][0].Name)

	assert.Equal(t, backend.ID, grouped["Backend"][0].Category)
	assert.Equal(t, "Backend", grouped["Backend"][0].CategoryName)
}

func TestListSkillsGroupedKeyOrderFollowsFirstEncounter(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	backend := createTestCategory(t, db, "Backend")
	frontend := createTestCategory(t, db, "Frontend")

	// First skill belongs to Frontend, so its key must come first
	createTestSkill(t, db, "React", frontend.ID)
	createTestSkill(t, db, "Go", backend.ID)

	recorder := doRequest(t, router, http.MethodGet, "/skills", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	frontendIdx := strings.Index(body, `"Frontend"`)
	backendIdx := strings.Index(body, `"Backend"`)
	require.NotEqual(t, -1, frontendIdx)
	require.NotEqual(t, -1, backendIdx)
	assert.Less(t, frontendIdx, backendIdx)
}

func TestListSkillsGroupedMergesCategoriesSharingAName(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	first := createTestCategory(t, db, "Tools")
	second := &models.Category{Name: "Tools", Slug: "tools-legacy"}
	require.NoError(t, db.Create(second).Error)

	createTestSkill(t, db, "Docker", first.ID)
	createTestSkill(t, db, "Terraform", second.ID)

	recorder := doRequest(t, router, http.MethodGet, "/skills", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var grouped map[string][]SkillResource
	decodeBody(t, recorder, &grouped)

	require.Len(t, grouped, 1)
	require.Len(t, grouped["Tools"], 2)
	assert.Equal(t, "Docker", grouped["Tools"][0].Name)
	assert.Equal(t, "Terraform", grouped["Tools"][1].Name)
}

func TestListSkillsGroupedEmpty(t *testing.T) {
	_, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	recorder := doRequest(t, router, http.MethodGet, "/skills", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{}`, recorder.Body.String())
}

func TestGetSkill(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	backend := createTestCategory(t, db, "Backend")
	skill := createTestSkill(t, db, "Go", backend.ID)

	recorder := doRequest(t, router, http.MethodGet, "/skills/1", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var resource SkillResource
	decodeBody(t, recorder, &resource)

	assert.Equal(t, skill.ID, resource.ID)
	assert.Equal(t, "Go", resource.Name)
	assert.Equal(t, backend.ID, resource.Category)
	assert.Equal(t, "Backend", resource.CategoryName)
}

func TestGetSkillNotFound(t *testing.T) {
	_, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	recorder := doRequest(t, router, http.MethodGet, "/skills/999", nil, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
