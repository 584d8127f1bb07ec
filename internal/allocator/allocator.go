package allocator

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/driftlab/snowflaked/internal/common/errors"
	"github.com/driftlab/snowflaked/internal/coordination"
)

// Allocator claims a worker-id slot for this process by registering its
// advertise address in the coordination store. The registration is
// liveness-bound: a crashed process frees its slot when its session ends.
type Allocator struct {
	store         coordination.Store
	registryPath  string
	advertiseAddr string
	logger        *zap.Logger
}

func New(store coordination.Store, registryPath, advertiseAddr string, logger *zap.Logger) *Allocator {
	return &Allocator{
		store:         store,
		registryPath:  registryPath,
		advertiseAddr: advertiseAddr,
		logger:        logger,
	}
}

// Allocate returns this process's worker id. A non-negative staticWorkerID
// is taken as-is with no store interaction. Otherwise slots 0..maxWorkerID
// are tried in ascending order; a slot held by another live process moves
// the scan to the next candidate, any other store failure aborts. If every
// slot is held the deployment is at capacity and startup must fail.
func (a *Allocator) Allocate(ctx context.Context, staticWorkerID, maxWorkerID int64) (int64, error) {
	if staticWorkerID >= 0 {
		a.logger.Info("using statically configured worker id",
			zap.Int64("worker_id", staticWorkerID),
		)
		return staticWorkerID, nil
	}

	for candidate := int64(0); candidate <= maxWorkerID; candidate++ {
		key := fmt.Sprintf("%s/%d", a.registryPath, candidate)
		err := a.store.CreateLive(ctx, key, a.advertiseAddr)
		if err == nil {
			a.logger.Info("claimed worker id",
				zap.Int64("worker_id", candidate),
				zap.String("registration", a.advertiseAddr),
			)
			return candidate, nil
		}
		if stderrors.Is(err, coordination.ErrNodeExists) {
			continue
		}
		return -1, fmt.Errorf("%w: claim slot %d: %w", errors.ErrCoordinationUnavailable, candidate, err)
	}

	return -1, fmt.Errorf("%w: all %d slots under %s are held",
		errors.ErrWorkerIdExhausted, maxWorkerID+1, a.registryPath)
}
