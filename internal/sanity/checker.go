package sanity

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/driftlab/snowflaked/internal/common/errors"
	"github.com/driftlab/snowflaked/internal/coordination"
)

// PeerClient is one already-registered peer's RPC surface as seen by the
// sanity check.
type PeerClient interface {
	WorkerID(ctx context.Context) (int64, error)
	Timestamp(ctx context.Context) (int64, error)
	Close() error
}

// DialFunc opens a short-lived connection to a peer address.
type DialFunc func(ctx context.Context, addr string) (PeerClient, error)

// Checker cross-validates this process against the already-registered fleet
// before it is allowed to serve: every registered peer must be reachable,
// must agree about its own worker id, and the fleet's mean clock must be
// within tolerance of ours. Any violation is fatal to startup, because
// serving with a misassigned slot or a skewed clock risks silent duplicate
// IDs that nothing downstream can detect.
type Checker struct {
	store        coordination.Store
	registryPath string
	dial         DialFunc
	peerTimeout  time.Duration
	tolerance    time.Duration
	nowMs        func() int64
	logger       *zap.Logger
}

func New(store coordination.Store, registryPath string, dial DialFunc, peerTimeout, tolerance time.Duration, logger *zap.Logger) *Checker {
	return NewWithClock(store, registryPath, dial, peerTimeout, tolerance,
		func() int64 { return time.Now().UnixMilli() }, logger)
}

func NewWithClock(store coordination.Store, registryPath string, dial DialFunc, peerTimeout, tolerance time.Duration, nowMs func() int64, logger *zap.Logger) *Checker {
	return &Checker{
		store:        store,
		registryPath: registryPath,
		dial:         dial,
		peerTimeout:  peerTimeout,
		tolerance:    tolerance,
		nowMs:        nowMs,
		logger:       logger,
	}
}

// Check runs the startup cross-validation. An empty registry succeeds
// trivially: a cold-starting fleet has nothing to compare against.
func (c *Checker) Check(ctx context.Context) error {
	peers, err := c.store.ListChildren(ctx, c.registryPath)
	if err != nil {
		return fmt.Errorf("%w: list %s: %w", errors.ErrCoordinationUnavailable, c.registryPath, err)
	}

	if len(peers) == 0 {
		c.logger.Info("no registered peers, skipping sanity check")
		return nil
	}

	timestamps := make([]int64, 0, len(peers))
	for name, addr := range peers {
		claimed, parseErr := strconv.ParseInt(name, 10, 64)
		if parseErr != nil {
			return fmt.Errorf("%w: registry key %q is not a worker id", errors.ErrPeerMismatch, name)
		}

		ts, peerErr := c.checkPeer(ctx, claimed, addr)
		if peerErr != nil {
			return peerErr
		}
		timestamps = append(timestamps, ts)
	}

	var sum int64
	for _, ts := range timestamps {
		sum += ts
	}
	mean := sum / int64(len(timestamps))

	local := c.nowMs()
	skew := local - mean
	if skew < 0 {
		skew = -skew
	}

	if skew > c.tolerance.Milliseconds() {
		return fmt.Errorf("%w: local clock %dms, fleet mean %dms, skew %dms exceeds %dms",
			errors.ErrClockSkewExceeded, local, mean, skew, c.tolerance.Milliseconds())
	}

	c.logger.Info("peer sanity check passed",
		zap.Int("peers", len(timestamps)),
		zap.Int64("skew_ms", skew),
	)
	return nil
}

func (c *Checker) checkPeer(ctx context.Context, claimed int64, addr string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.peerTimeout)
	defer cancel()

	client, err := c.dial(ctx, addr)
	if err != nil {
		return 0, fmt.Errorf("%w: dial %s (worker %d): %w", errors.ErrPeerUnreachable, addr, claimed, err)
	}
	defer func() {
		_ = client.Close()
	}()

	reported, err := client.WorkerID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: get worker id from %s: %w", errors.ErrPeerUnreachable, addr, err)
	}
	if reported != claimed {
		// Registry corruption or a stale entry: the peer holds slot
		// `claimed` in the store but believes it is `reported`.
		return 0, fmt.Errorf("%w: %s registered as worker %d but reports %d",
			errors.ErrPeerMismatch, addr, claimed, reported)
	}

	ts, err := client.Timestamp(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: get timestamp from %s: %w", errors.ErrPeerUnreachable, addr, err)
	}
	return ts, nil
}
