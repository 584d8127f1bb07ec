package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	snowflakev1 "github.com/driftlab/snowflaked/api/gen/go/snowflake/v1"
	"github.com/driftlab/snowflaked/internal/generator"
	"github.com/driftlab/snowflaked/internal/server"
)

func TestGetIdReturnsDecomposableID(t *testing.T) {
	gen, err := generator.New(3, 12)
	require.NoError(t, err)

	h := server.NewHandler(gen, nil)
	resp, err := h.GetId(context.Background(), &snowflakev1.GetIdRequest{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, resp.Id, int64(0))

	parts := generator.Decompose(resp.Id)
	assert.Equal(t, int64(3), parts.DatacenterID)
	assert.Equal(t, int64(12), parts.WorkerID)
}

func TestGetIdClockBackwardsMapsToFailedPrecondition(t *testing.T) {
	now := time.Now().UnixMilli()
	calls := 0
	clock := func() int64 {
		calls++
		if calls == 1 {
			return now
		}
		return now - 1000
	}

	gen, err := generator.NewWithClock(0, 0, clock)
	require.NoError(t, err)

	h := server.NewHandler(gen, nil)
	_, err = h.GetId(context.Background(), &snowflakev1.GetIdRequest{})
	require.NoError(t, err)

	_, err = h.GetId(context.Background(), &snowflakev1.GetIdRequest{})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
}

func TestIdentityEndpoints(t *testing.T) {
	gen, err := generator.New(7, 29)
	require.NoError(t, err)

	h := server.NewHandler(gen, nil)

	wid, err := h.GetWorkerId(context.Background(), &snowflakev1.GetWorkerIdRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(29), wid.WorkerId)

	dcid, err := h.GetDatacenterId(context.Background(), &snowflakev1.GetDatacenterIdRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), dcid.DatacenterId)

	before := time.Now().UnixMilli()
	ts, err := h.GetTimestamp(context.Background(), &snowflakev1.GetTimestampRequest{})
	require.NoError(t, err)
	after := time.Now().UnixMilli()
	assert.GreaterOrEqual(t, ts.TimestampMs, before)
	assert.LessOrEqual(t, ts.TimestampMs, after)
}
