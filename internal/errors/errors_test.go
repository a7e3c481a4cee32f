// FilePath: internal/errors/errors_test.go
package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("bad", nil).Code)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("missing", nil).Code)
	assert.Equal(t, http.StatusConflict, NewConflictError("dup", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, NewDatabaseError("db", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, NewAuthError("auth", nil).Code)
	assert.Equal(t, http.StatusForbidden, NewAuthorizationError("authz", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, NewUnavailableError("down", nil).Code)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("missing", nil)))
	assert.False(t, IsNotFound(NewConflictError("dup", nil)))
	assert.False(t, IsNotFound(fmt.Errorf("plain")))

	assert.True(t, IsConflict(NewConflictError("dup", nil)))
	assert.True(t, IsValidation(NewValidationError("bad", nil)))
	assert.False(t, IsValidation(NewNotFoundError("missing", nil)))
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("pq: duplicate key value")
	err := NewConflictError("warehouse already exists", inner)
	assert.Equal(t, inner, err.Unwrap())
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestWithRequestIDAndDetails(t *testing.T) {
	err := NewValidationError("bad field", nil).
		WithRequestID("req_abc").
		WithDetails("owner_id")
	assert.Equal(t, "req_abc", err.RequestID)
	assert.Equal(t, "owner_id", err.Details)
}
