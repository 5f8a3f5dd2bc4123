package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		cause  error
		status int
	}{
		{"duplicate key (postgres)", errors.New(`duplicate key value violates unique constraint "idx_categories_slug"`), http.StatusConflict},
		{"unique constraint (sqlite)", errors.New("UNIQUE constraint failed: categories.slug"), http.StatusConflict},
		{"foreign key", errors.New("FOREIGN KEY constraint failed"), http.StatusBadRequest},
		{"record not found", errors.New("record not found"), http.StatusNotFound},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), http.StatusServiceUnavailable},
		{"anything else", errors.New("disk I/O error"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := NewDatabaseError("create", "category", tc.cause)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.ErrorIs(t, apiErr.Cause, tc.cause)
		})
	}
}

func TestUniqueConstraintViolationErrorNamesField(t *testing.T) {
	apiErr := NewUniqueConstraintViolationError("category", "slug", errors.New("UNIQUE constraint failed"))

	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "slug", apiErr.Field)
	assert.True(t, errors.Is(apiErr, ErrUniqueConstraintViolation))
}
