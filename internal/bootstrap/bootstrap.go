package bootstrap

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/driftlab/snowflaked/internal/allocator"
	"github.com/driftlab/snowflaked/internal/common/config"
	"github.com/driftlab/snowflaked/internal/common/errors"
	"github.com/driftlab/snowflaked/internal/coordination"
	"github.com/driftlab/snowflaked/internal/generator"
	"github.com/driftlab/snowflaked/internal/sanity"
)

// Options carries everything Run needs. Store and Dial are injected so the
// whole startup sequence runs against fakes in tests.
type Options struct {
	Config *config.Config
	Store  coordination.Store
	Dial   sanity.DialFunc
	Logger *zap.Logger
}

type Result struct {
	Generator    *generator.Generator
	DatacenterID int64
	WorkerID     int64
}

// Run executes the startup state machine: load datacenter id, optionally
// cross-check the registered fleet, claim a worker slot, construct the
// generator. Every failure is terminal; the caller must exit rather than
// serve, because an unverified identity or clock risks silent duplicate IDs.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	logger := opts.Logger

	datacenterID, err := loadDatacenterID(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Info("datacenter id resolved", zap.Int64("datacenter_id", datacenterID))

	if delay := cfg.Snowflake.StartupDelay; delay > 0 {
		logger.Info("startup delay", zap.Duration("delay", delay))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if cfg.Snowflake.SanityCheckEnabled {
		checker := sanity.New(
			opts.Store,
			cfg.Coordination.RegistryPath,
			opts.Dial,
			cfg.Snowflake.PeerTimeout,
			cfg.Snowflake.SkewTolerance,
			logger,
		)
		if err := checker.Check(ctx); err != nil {
			return nil, fmt.Errorf("peer sanity check: %w", err)
		}
	} else {
		logger.Warn("peer sanity check disabled")
	}

	advertiseAddr := fmt.Sprintf("%s:%d", cfg.Server.AdvertiseHost, cfg.Server.GRPCPort)
	alloc := allocator.New(opts.Store, cfg.Coordination.RegistryPath, advertiseAddr, logger)
	workerID, err := alloc.Allocate(ctx, cfg.Snowflake.WorkerID, generator.MaxWorkerID)
	if err != nil {
		return nil, fmt.Errorf("allocate worker id: %w", err)
	}

	gen, err := generator.New(datacenterID, workerID)
	if err != nil {
		return nil, fmt.Errorf("construct generator: %w", err)
	}

	return &Result{
		Generator:    gen,
		DatacenterID: datacenterID,
		WorkerID:     workerID,
	}, nil
}

func loadDatacenterID(ctx context.Context, opts Options) (int64, error) {
	if id := opts.Config.Snowflake.DatacenterID; id >= 0 {
		return id, nil
	}

	path := opts.Config.Coordination.DatacenterIDPath
	value, err := opts.Store.Get(ctx, path)
	if stderrors.Is(err, coordination.ErrNotFound) {
		return -1, fmt.Errorf("%w: nothing at %s", errors.ErrNoDatacenterId, path)
	}
	if err != nil {
		return -1, fmt.Errorf("%w: read %s: %w", errors.ErrCoordinationUnavailable, path, err)
	}

	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return -1, fmt.Errorf("%w: %s holds %q", errors.ErrNoDatacenterId, path, value)
	}
	return id, nil
}
