package sanity_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/driftlab/snowflaked/internal/common/errors"
	"github.com/driftlab/snowflaked/internal/coordination"
	"github.com/driftlab/snowflaked/internal/sanity"
)

const registryPath = "/snowflaked/workers"

type fakePeer struct {
	workerID  int64
	timestamp int64
	err       error
}

func (p *fakePeer) WorkerID(ctx context.Context) (int64, error) {
	if p.err != nil {
		return 0, p.err
	}
	return p.workerID, nil
}

func (p *fakePeer) Timestamp(ctx context.Context) (int64, error) {
	if p.err != nil {
		return 0, p.err
	}
	return p.timestamp, nil
}

func (p *fakePeer) Close() error { return nil }

// fleet wires a MemStore registry and a dial func returning fakes by address.
type fleet struct {
	store *coordination.MemStore
	peers map[string]*fakePeer
}

func newFleet() *fleet {
	return &fleet{
		store: coordination.NewMemStore(),
		peers: make(map[string]*fakePeer),
	}
}

func (f *fleet) register(t *testing.T, slot int64, addr string, peer *fakePeer) {
	t.Helper()
	require.NoError(t, f.store.CreateLive(context.Background(),
		fmt.Sprintf("%s/%d", registryPath, slot), addr))
	f.peers[addr] = peer
}

func (f *fleet) dial(ctx context.Context, addr string) (sanity.PeerClient, error) {
	peer, ok := f.peers[addr]
	if !ok {
		return nil, stderrors.New("connection refused")
	}
	return peer, nil
}

func newChecker(f *fleet, localNow int64) *sanity.Checker {
	return sanity.NewWithClock(f.store, registryPath, f.dial,
		time.Second, 10*time.Second, func() int64 { return localNow }, zap.NewNop())
}

func TestCheckEmptyRegistrySucceeds(t *testing.T) {
	f := newFleet()
	err := newChecker(f, time.Now().UnixMilli()).Check(context.Background())
	assert.NoError(t, err)
}

func TestCheckAgreeingPeersSucceed(t *testing.T) {
	local := time.Now().UnixMilli()
	f := newFleet()
	f.register(t, 0, "a:7609", &fakePeer{workerID: 0, timestamp: local})
	f.register(t, 1, "b:7609", &fakePeer{workerID: 1, timestamp: local + 2000})

	err := newChecker(f, local).Check(context.Background())
	assert.NoError(t, err)
}

func TestCheckClockSkewExceeded(t *testing.T) {
	// Peers report [T, T+35000]: the mean is T+17500, which puts local time
	// T outside the 10s tolerance.
	local := time.Now().UnixMilli()
	f := newFleet()
	f.register(t, 0, "a:7609", &fakePeer{workerID: 0, timestamp: local})
	f.register(t, 1, "b:7609", &fakePeer{workerID: 1, timestamp: local + 35000})

	err := newChecker(f, local).Check(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrClockSkewExceeded)
}

func TestCheckSkewJustWithinTolerance(t *testing.T) {
	// Peers report [T, T+19000]: mean T+9500, inside the 10s tolerance.
	local := time.Now().UnixMilli()
	f := newFleet()
	f.register(t, 0, "a:7609", &fakePeer{workerID: 0, timestamp: local})
	f.register(t, 1, "b:7609", &fakePeer{workerID: 1, timestamp: local + 19000})

	err := newChecker(f, local).Check(context.Background())
	assert.NoError(t, err)
}

func TestCheckPeerMismatch(t *testing.T) {
	local := time.Now().UnixMilli()
	f := newFleet()
	// Registered under slot 3 but the peer believes it is worker 5.
	f.register(t, 3, "a:7609", &fakePeer{workerID: 5, timestamp: local})

	err := newChecker(f, local).Check(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrPeerMismatch)
}

func TestCheckUnreachablePeerIsFatal(t *testing.T) {
	local := time.Now().UnixMilli()
	f := newFleet()
	f.register(t, 0, "a:7609", &fakePeer{workerID: 0, timestamp: local})
	// Slot 1 is registered but nothing answers at its address.
	require.NoError(t, f.store.CreateLive(context.Background(), registryPath+"/1", "gone:7609"))

	err := newChecker(f, local).Check(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrPeerUnreachable)
}

func TestCheckPeerRPCErrorIsFatal(t *testing.T) {
	local := time.Now().UnixMilli()
	f := newFleet()
	f.register(t, 0, "a:7609", &fakePeer{err: stderrors.New("deadline exceeded")})

	err := newChecker(f, local).Check(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrPeerUnreachable)
}

func TestCheckCorruptRegistryKey(t *testing.T) {
	local := time.Now().UnixMilli()
	f := newFleet()
	require.NoError(t, f.store.CreateLive(context.Background(), registryPath+"/banana", "a:7609"))

	err := newChecker(f, local).Check(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrPeerMismatch)
}

func TestCheckStoreFailure(t *testing.T) {
	f := newFleet()
	f.store.SetError(stderrors.New("no route to host"))

	err := newChecker(f, time.Now().UnixMilli()).Check(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrCoordinationUnavailable)
}
