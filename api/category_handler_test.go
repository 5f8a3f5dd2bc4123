package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	createTestCategory(t, db, "Backend")
	createTestCategory(t, db, "Frontend")

	recorder := doRequest(t, router, http.MethodGet, "/categories", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var categories []CategoryResource
	decodeBody(t, recorder, &categories)

	require.Len(t, categories, 2)
	assert.Equal(t, "Backend", categories[0].Name)
	assert.Equal(t, "backend", categories[0].Slug)
}

func TestGetCategoryBySlug(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	created := createTestCategory(t, db, "Machine Learning")

	recorder := doRequest(t, router, http.MethodGet, "/categories/machine-learning", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var category CategoryResource
	decodeBody(t, recorder, &category)

	assert.Equal(t, created.ID, category.ID)
	assert.Equal(t, "Machine Learning", category.Name)
}

func TestGetCategoryNotFound(t *testing.T) {
	_, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	recorder := doRequest(t, router, http.MethodGet, "/categories/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListTags(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	createTestTag(t, db, "Golang")
	createTestTag(t, db, "Web Dev")

	recorder := doRequest(t, router, http.MethodGet, "/tags", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var tags []TagResource
	decodeBody(t, recorder, &tags)

	require.Len(t, tags, 2)
	assert.Equal(t, "web-dev", tags[1].Slug)
}

func TestGetTagBySlug(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	createTestTag(t, db, "Golang")

	recorder := doRequest(t, router, http.MethodGet, "/tags/golang", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var tag TagResource
	decodeBody(t, recorder, &tag)
	assert.Equal(t, "Golang", tag.Name)
}

func TestGetTagNotFound(t *testing.T) {
	_, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	recorder := doRequest(t, router, http.MethodGet, "/tags/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
