package unit_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	snowflakev1 "github.com/driftlab/snowflaked/api/gen/go/snowflake/v1"
	"github.com/driftlab/snowflaked/internal/bootstrap"
	"github.com/driftlab/snowflaked/internal/common/config"
	"github.com/driftlab/snowflaked/internal/common/errors"
	"github.com/driftlab/snowflaked/internal/coordination"
	"github.com/driftlab/snowflaked/internal/generator"
	"github.com/driftlab/snowflaked/internal/sanity"
	"github.com/driftlab/snowflaked/internal/server"
)

// fleet holds a shared in-memory coordination store plus the fake peers
// reachable through it, so several bootstraps can run against one registry.
type fleet struct {
	store *coordination.MemStore
	peers map[string]sanity.PeerClient
}

func newFleet() *fleet {
	return &fleet{
		store: coordination.NewMemStore(),
		peers: make(map[string]sanity.PeerClient),
	}
}

func (f *fleet) dial(ctx context.Context, addr string) (sanity.PeerClient, error) {
	peer, ok := f.peers[addr]
	if !ok {
		return nil, fmt.Errorf("connection refused: %s", addr)
	}
	return peer, nil
}

type fakePeer struct {
	workerID  int64
	timestamp int64
}

func (p *fakePeer) WorkerID(ctx context.Context) (int64, error)  { return p.workerID, nil }
func (p *fakePeer) Timestamp(ctx context.Context) (int64, error) { return p.timestamp, nil }
func (p *fakePeer) Close() error                                 { return nil }

func nodeConfig(host string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			GRPCPort:      7609,
			AdvertiseHost: host,
		},
		Snowflake: config.SnowflakeConfig{
			DatacenterID:       3,
			WorkerID:           -1,
			SanityCheckEnabled: true,
			PeerTimeout:        time.Second,
			SkewTolerance:      10 * time.Second,
		},
		Coordination: config.CoordinationConfig{
			RegistryPath:     "/snowflaked/workers",
			DatacenterIDPath: "/snowflaked/datacenter-id",
		},
	}
}

func (f *fleet) startNode(t *testing.T, host string) *bootstrap.Result {
	t.Helper()

	res, err := bootstrap.Run(context.Background(), bootstrap.Options{
		Config: nodeConfig(host),
		Store:  f.store,
		Dial:   f.dial,
		Logger: zap.NewNop(),
	})
	require.NoError(t, err)

	// Every subsequent node's sanity check will dial this one.
	f.peers[fmt.Sprintf("%s:7609", host)] = &fakePeer{
		workerID:  res.WorkerID,
		timestamp: time.Now().UnixMilli(),
	}
	return res
}

func TestRollingFleetStart(t *testing.T) {
	f := newFleet()

	first := f.startNode(t, "node-a")
	assert.Equal(t, int64(0), first.WorkerID)

	second := f.startNode(t, "node-b")
	assert.Equal(t, int64(1), second.WorkerID)

	third := f.startNode(t, "node-c")
	assert.Equal(t, int64(2), third.WorkerID)

	handler := server.NewHandler(third.Generator, nil)
	resp, err := handler.GetId(context.Background(), &snowflakev1.GetIdRequest{})
	require.NoError(t, err)

	parts := generator.Decompose(resp.Id)
	assert.Equal(t, int64(3), parts.DatacenterID)
	assert.Equal(t, int64(2), parts.WorkerID)
}

func TestStartupAbortsOnSkewedPeer(t *testing.T) {
	f := newFleet()
	f.startNode(t, "node-a")

	// Shift the registered peer's clock a minute ahead of ours.
	f.peers["node-a:7609"] = &fakePeer{
		workerID:  0,
		timestamp: time.Now().UnixMilli() + 60_000,
	}

	_, err := bootstrap.Run(context.Background(), bootstrap.Options{
		Config: nodeConfig("node-b"),
		Store:  f.store,
		Dial:   f.dial,
		Logger: zap.NewNop(),
	})
	require.ErrorIs(t, err, errors.ErrClockSkewExceeded)
}

func TestStartupAbortsOnPeerIdentityMismatch(t *testing.T) {
	f := newFleet()
	f.startNode(t, "node-a")

	// The store says node-a holds slot 0 but the process answers with 9.
	f.peers["node-a:7609"] = &fakePeer{
		workerID:  9,
		timestamp: time.Now().UnixMilli(),
	}

	_, err := bootstrap.Run(context.Background(), bootstrap.Options{
		Config: nodeConfig("node-b"),
		Store:  f.store,
		Dial:   f.dial,
		Logger: zap.NewNop(),
	})
	require.ErrorIs(t, err, errors.ErrPeerMismatch)
}

func TestRestartReclaimsExpiredSlot(t *testing.T) {
	f := newFleet()
	f.startNode(t, "node-a")
	f.startNode(t, "node-b")

	// node-a dies; its session lapses and its registration disappears.
	f.store.Disconnect()
	delete(f.peers, "node-a:7609")
	delete(f.peers, "node-b:7609")

	replacement := f.startNode(t, "node-c")
	assert.Equal(t, int64(0), replacement.WorkerID)
}
