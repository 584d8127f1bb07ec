package allocator_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/driftlab/snowflaked/internal/allocator"
	"github.com/driftlab/snowflaked/internal/common/errors"
	"github.com/driftlab/snowflaked/internal/coordination"
)

const registryPath = "/snowflaked/workers"

func TestAllocateStaticOverrideSkipsStore(t *testing.T) {
	store := coordination.NewMemStore()
	store.SetError(stderrors.New("store must not be touched"))

	a := allocator.New(store, registryPath, "localhost:7609", zap.NewNop())
	id, err := a.Allocate(context.Background(), 17, 31)
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
}

func TestAllocateTakesLowestFreeSlot(t *testing.T) {
	store := coordination.NewMemStore()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.CreateLive(context.Background(),
			fmt.Sprintf("%s/%d", registryPath, i), "peer:7609"))
	}

	a := allocator.New(store, registryPath, "localhost:7609", zap.NewNop())
	id, err := a.Allocate(context.Background(), -1, 31)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	// The winning slot now holds our registration.
	value, err := store.Get(context.Background(), registryPath+"/5")
	require.NoError(t, err)
	assert.Equal(t, "localhost:7609", value)
}

func TestAllocateExhaustedRange(t *testing.T) {
	store := coordination.NewMemStore()
	const max = int64(7)
	for i := int64(0); i <= max; i++ {
		require.NoError(t, store.CreateLive(context.Background(),
			fmt.Sprintf("%s/%d", registryPath, i), "peer:7609"))
	}

	a := allocator.New(store, registryPath, "localhost:7609", zap.NewNop())
	_, err := a.Allocate(context.Background(), -1, max)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrWorkerIdExhausted)
}

func TestAllocateStoreFailureAborts(t *testing.T) {
	store := coordination.NewMemStore()
	storeErr := stderrors.New("connection refused")
	store.SetError(storeErr)

	a := allocator.New(store, registryPath, "localhost:7609", zap.NewNop())
	_, err := a.Allocate(context.Background(), -1, 31)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrCoordinationUnavailable)
	assert.ErrorIs(t, err, storeErr)
}

func TestAllocateSlotFreedByDisconnect(t *testing.T) {
	store := coordination.NewMemStore()
	require.NoError(t, store.CreateLive(context.Background(), registryPath+"/0", "peer:7609"))

	// Simulate the holder's session expiring: slot 0 opens up again.
	store.Disconnect()

	a := allocator.New(store, registryPath, "localhost:7609", zap.NewNop())
	id, err := a.Allocate(context.Background(), -1, 31)
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)
}
