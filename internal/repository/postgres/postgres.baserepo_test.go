// FilePath: internal/repository/postgres/postgres.baserepo_test.go
package postgres

import (
	"database/sql/driver"
	"fmt"
	"net"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/voltwatch/facilityhub/internal/errors"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("plain failure")))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsConnectionFailure(t *testing.T) {
	assert.True(t, isConnectionFailure(driver.ErrBadConn))
	assert.True(t, isConnectionFailure(fmt.Errorf("exec: %w", driver.ErrBadConn)))
	assert.True(t, isConnectionFailure(&net.OpError{Op: "dial", Err: fmt.Errorf("connection refused")}))
	assert.True(t, isConnectionFailure(&pq.Error{Code: "08006"}))
	assert.True(t, isConnectionFailure(&pq.Error{Code: "08000"}))
	assert.False(t, isConnectionFailure(&pq.Error{Code: "23505"}))
	assert.False(t, isConnectionFailure(fmt.Errorf("plain failure")))
	assert.False(t, isConnectionFailure(nil))
}

func TestStoreErrorMapsConnectionFailuresToUnavailable(t *testing.T) {
	apiErr := storeError("failed to get warehouse", driver.ErrBadConn)
	assert.Equal(t, errors.ErrorTypeUnavailable, apiErr.Type)
	assert.Equal(t, 503, apiErr.Code)

	apiErr = storeError("failed to get warehouse", &pq.Error{Code: "08006"})
	assert.Equal(t, errors.ErrorTypeUnavailable, apiErr.Type)

	apiErr = storeError("failed to get warehouse", &net.OpError{Op: "read", Err: fmt.Errorf("connection reset")})
	assert.Equal(t, errors.ErrorTypeUnavailable, apiErr.Type)

	apiErr = storeError("failed to get warehouse", fmt.Errorf("syntax error"))
	assert.Equal(t, errors.ErrorTypeDatabase, apiErr.Type)
	assert.Equal(t, 500, apiErr.Code)
}
