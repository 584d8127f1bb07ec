package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 7609, cfg.Server.GRPCPort)
	assert.Equal(t, 8080, cfg.Server.GatewayPort)
	assert.Equal(t, "localhost", cfg.Server.AdvertiseHost)

	assert.Equal(t, int64(-1), cfg.Snowflake.DatacenterID)
	assert.Equal(t, int64(-1), cfg.Snowflake.WorkerID)
	assert.True(t, cfg.Snowflake.SanityCheckEnabled)
	assert.Equal(t, time.Duration(0), cfg.Snowflake.StartupDelay)
	assert.Equal(t, 5*time.Second, cfg.Snowflake.PeerTimeout)
	assert.Equal(t, 10*time.Second, cfg.Snowflake.SkewTolerance)

	assert.Equal(t, []string{"localhost:2379"}, cfg.Coordination.Endpoints)
	assert.Equal(t, "/snowflaked/workers", cfg.Coordination.RegistryPath)
	assert.Equal(t, "/snowflaked/datacenter-id", cfg.Coordination.DatacenterIDPath)

	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GRPC_PORT", "9000")
	t.Setenv("SNOWFLAKE_DATACENTER_ID", "7")
	t.Setenv("SNOWFLAKE_WORKER_ID", "12")
	t.Setenv("SANITY_CHECK_ENABLED", "false")
	t.Setenv("STARTUP_DELAY", "2s")
	t.Setenv("SKEW_TOLERANCE", "500ms")
	t.Setenv("ETCD_ENDPOINTS", "etcd-0:2379, etcd-1:2379,etcd-2:2379")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.GRPCPort)
	assert.Equal(t, int64(7), cfg.Snowflake.DatacenterID)
	assert.Equal(t, int64(12), cfg.Snowflake.WorkerID)
	assert.False(t, cfg.Snowflake.SanityCheckEnabled)
	assert.Equal(t, 2*time.Second, cfg.Snowflake.StartupDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Snowflake.SkewTolerance)
	assert.Equal(t, []string{"etcd-0:2379", "etcd-1:2379", "etcd-2:2379"}, cfg.Coordination.Endpoints)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("GRPC_PORT", "not-a-port")
	t.Setenv("SNOWFLAKE_WORKER_ID", "twelve")
	t.Setenv("STARTUP_DELAY", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7609, cfg.Server.GRPCPort)
	assert.Equal(t, int64(-1), cfg.Snowflake.WorkerID)
	assert.Equal(t, time.Duration(0), cfg.Snowflake.StartupDelay)
}
