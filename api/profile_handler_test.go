package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
)

func TestListProfilesReturnsArray(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	createTestProfile(t, db)

	recorder := doRequest(t, router, http.MethodGet, "/profile", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var profiles []models.Profile
	decodeBody(t, recorder, &profiles)

	require.Len(t, profiles, 1)
	assert.Equal(t, "Ada Lovelace", profiles[0].Name)
	assert.Equal(t, "https://github.com/ada", profiles[0].Github)
}

func TestListProfilesEmpty(t *testing.T) {
	_, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	recorder := doRequest(t, router, http.MethodGet, "/profile", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestGetProfileByID(t *testing.T) {
	db, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	profile := createTestProfile(t, db)

	recorder := doRequest(t, router, http.MethodGet, "/profile/1", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var fetched models.Profile
	decodeBody(t, recorder, &fetched)
	assert.Equal(t, profile.ID, fetched.ID)
	assert.Equal(t, "Software Engineer", fetched.Title)
}

func TestGetProfileNotFound(t *testing.T) {
	_, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	recorder := doRequest(t, router, http.MethodGet, "/profile/999", nil, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetProfileInvalidID(t *testing.T) {
	_, testDB := setupTestDB(t)
	router := setupTestRouter(testDB)

	recorder := doRequest(t, router, http.MethodGet, "/profile/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
