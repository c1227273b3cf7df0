package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker implements HealthChecker for testing.
type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string                  { return s.name }
func (s *stubChecker) Check(_ context.Context) error { return s.err }

func TestRegister_Success(t *testing.T) {
	registry := NewHealthRegistry()

	err := registry.Register(&stubChecker{name: "entry-store"})

	require.NoError(t, err)
	assert.Len(t, registry.checkers, 1)
}

func TestRegister_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "entry-store"}))

	err := registry.Register(&stubChecker{name: "entry-store"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateChecker)
}

func TestCheckAll_Empty(t *testing.T) {
	registry := NewHealthRegistry()

	result := registry.CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.WithinDuration(t, time.Now(), result.Timestamp, time.Second)
}

func TestCheckAll_AllHealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "entry-store"}))
	require.NoError(t, registry.Register(&stubChecker{name: "apod"}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, HealthStatusHealthy, result.Checks["entry-store"].Status)
	assert.Equal(t, HealthStatusHealthy, result.Checks["apod"].Status)
}

func TestCheckAll_OneUnhealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "entry-store"}))
	require.NoError(t, registry.Register(&stubChecker{
		name: "apod",
		err:  errors.New("dial timeout"),
	}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, HealthStatusHealthy, result.Checks["entry-store"].Status)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks["apod"].Status)
	assert.Equal(t, "dial timeout", result.Checks["apod"].Message)
}
