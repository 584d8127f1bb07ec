package generator

import (
	"fmt"
	"sync"
	"time"

	"github.com/driftlab/snowflaked/internal/common/errors"
)

const (
	// Epoch is 2022-01-01T00:00:00Z in milliseconds. The 41-bit timestamp
	// field overflows about 69 years after it; that is a deployment-lifetime
	// limit, not a runtime concern.
	Epoch = int64(1640995200000)

	timestampBits    = uint(41)
	datacenterIDBits = uint(5)
	workerIDBits     = uint(5)
	sequenceBits     = uint(12)

	MaxDatacenterID = int64(-1) ^ (int64(-1) << datacenterIDBits)
	MaxWorkerID     = int64(-1) ^ (int64(-1) << workerIDBits)
	sequenceMask    = int64(-1) ^ (int64(-1) << sequenceBits)

	workerIDShift     = sequenceBits
	datacenterIDShift = sequenceBits + workerIDBits
	timestampShift    = sequenceBits + workerIDBits + datacenterIDBits
)

// Generator mints unique, time-ordered 64-bit IDs for one fixed
// (datacenter, worker) pair. Safe for concurrent use.
type Generator struct {
	mu           sync.Mutex
	nowMs        func() int64
	datacenterID int64
	workerID     int64
	sequence     int64
	timestamp    int64
	// sequenceWaits counts the times generation exhausted the per-millisecond
	// sequence space and had to block for the next tick.
	sequenceWaits int64
}

func New(datacenterID, workerID int64) (*Generator, error) {
	return NewWithClock(datacenterID, workerID, func() int64 { return time.Now().UnixMilli() })
}

// NewWithClock injects the millisecond clock, which tests replace to drive
// the sequence-wrap and clock-rollback paths deterministically.
func NewWithClock(datacenterID, workerID int64, nowMs func() int64) (*Generator, error) {
	if datacenterID < 0 || datacenterID > MaxDatacenterID {
		return nil, fmt.Errorf("datacenter id %d out of range [0, %d]", datacenterID, MaxDatacenterID)
	}
	if workerID < 0 || workerID > MaxWorkerID {
		return nil, fmt.Errorf("worker id %d out of range [0, %d]", workerID, MaxWorkerID)
	}
	return &Generator{
		nowMs:        nowMs,
		datacenterID: datacenterID,
		workerID:     workerID,
	}, nil
}

// Generate returns the next ID. IDs from one generator are strictly
// increasing. If the wall clock is behind the last-seen timestamp the call
// fails with ErrClockMovedBackwards and state is left untouched.
func (g *Generator) Generate() (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.nowMs()

	if now < g.timestamp {
		return 0, errors.ClockMovedBackwards(
			fmt.Sprintf("clock is %dms behind last generated id", g.timestamp-now))
	}

	if now == g.timestamp {
		g.sequence = (g.sequence + 1) & sequenceMask
		if g.sequence == 0 {
			// Sequence space for this millisecond is exhausted; spin until
			// the clock ticks. Bounded: at most one millisecond.
			g.sequenceWaits++
			for now <= g.timestamp {
				now = g.nowMs()
			}
		}
	} else {
		g.sequence = 0
	}

	g.timestamp = now

	id := ((now - Epoch) << timestampShift) |
		(g.datacenterID << datacenterIDShift) |
		(g.workerID << workerIDShift) |
		g.sequence

	return id, nil
}

// Timestamp returns the generator's current wall-clock time in milliseconds.
// Peers compare it against their own clocks during the startup sanity check.
func (g *Generator) Timestamp() int64 {
	return g.nowMs()
}

func (g *Generator) DatacenterID() int64 {
	return g.datacenterID
}

func (g *Generator) WorkerID() int64 {
	return g.workerID
}

// SequenceWaits reports how many times generation has blocked on sequence
// exhaustion; exported to prometheus as a counter.
func (g *Generator) SequenceWaits() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sequenceWaits
}

// Parts are the decoded fields of an ID.
type Parts struct {
	Timestamp    int64 // milliseconds since the Unix epoch
	DatacenterID int64
	WorkerID     int64
	Sequence     int64
}

// Decompose unpacks an ID produced by any generator in the fleet.
func Decompose(id int64) Parts {
	return Parts{
		Timestamp:    (id >> timestampShift) + Epoch,
		DatacenterID: (id >> datacenterIDShift) & MaxDatacenterID,
		WorkerID:     (id >> workerIDShift) & MaxWorkerID,
		Sequence:     id & sequenceMask,
	}
}

// ExtractTime converts an ID's timestamp field back to wall-clock time.
func ExtractTime(id int64) time.Time {
	return time.UnixMilli(Decompose(id).Timestamp)
}
