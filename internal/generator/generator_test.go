package generator_test

import (
	"sync"
	"testing"
	"time"

	"github.com/driftlab/snowflaked/internal/common/errors"
	"github.com/driftlab/snowflaked/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a hand-driven millisecond clock. advanceAfter makes the clock
// tick forward once a number of reads have happened, which is how the tests
// get the sequence-wrap spin loop to terminate.
type fakeClock struct {
	mu           sync.Mutex
	now          int64
	reads        int
	advanceAfter int
}

func (c *fakeClock) read() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	if c.advanceAfter > 0 && c.reads > c.advanceAfter {
		c.now++
		c.advanceAfter = 0
	}
	return c.now
}

func (c *fakeClock) set(ms int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = ms
}

func TestNewRejectsOutOfRangeIDs(t *testing.T) {
	_, err := generator.New(-1, 0)
	assert.Error(t, err)

	_, err = generator.New(generator.MaxDatacenterID+1, 0)
	assert.Error(t, err)

	_, err = generator.New(0, -1)
	assert.Error(t, err)

	_, err = generator.New(0, generator.MaxWorkerID+1)
	assert.Error(t, err)

	_, err = generator.New(generator.MaxDatacenterID, generator.MaxWorkerID)
	assert.NoError(t, err)
}

func TestGenerateStrictlyIncreasing(t *testing.T) {
	gen, err := generator.New(1, 1)
	require.NoError(t, err)

	var last int64
	for i := 0; i < 10000; i++ {
		id, err := gen.Generate()
		require.NoError(t, err)
		require.Greater(t, id, last, "id %d not greater than predecessor", i)
		last = id
	}
}

func TestGenerateConcurrentUnique(t *testing.T) {
	gen, err := generator.New(2, 3)
	require.NoError(t, err)

	const (
		workers = 8
		perW    = 2000
	)

	ids := make(chan int64, workers*perW)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				id, err := gen.Generate()
				assert.NoError(t, err)
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, workers*perW)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perW)
}

func TestSequenceWrapWaitsForNextMillisecond(t *testing.T) {
	start := time.Now().UnixMilli()
	clock := &fakeClock{now: start}

	gen, err := generator.NewWithClock(0, 7, clock.read)
	require.NoError(t, err)

	// 4096 IDs fit in one millisecond: sequence 0..4095, timestamp fixed.
	for i := 0; i < 4096; i++ {
		id, err := gen.Generate()
		require.NoError(t, err)
		parts := generator.Decompose(id)
		assert.Equal(t, start, parts.Timestamp)
		assert.Equal(t, int64(i), parts.Sequence)
	}

	// The 4097th call wraps the sequence and must block until the clock
	// advances, then restart the sequence at zero.
	clock.mu.Lock()
	clock.advanceAfter = clock.reads + 3
	clock.mu.Unlock()

	id, err := gen.Generate()
	require.NoError(t, err)
	parts := generator.Decompose(id)
	assert.Equal(t, start+1, parts.Timestamp)
	assert.Equal(t, int64(0), parts.Sequence)
	assert.Equal(t, int64(1), gen.SequenceWaits())
}

func TestClockMovedBackwardsFailsWithoutMutation(t *testing.T) {
	start := time.Now().UnixMilli()
	clock := &fakeClock{now: start}

	gen, err := generator.NewWithClock(0, 0, clock.read)
	require.NoError(t, err)

	first, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, int64(0), generator.Decompose(first).Sequence)

	clock.set(start - 500)
	_, err = gen.Generate()
	require.Error(t, err)
	assert.True(t, errors.IsClockMovedBackwards(err))

	// The failed call must not have touched lastTimestamp or sequence: once
	// the clock recovers, generation continues exactly where it left off.
	clock.set(start)
	second, err := gen.Generate()
	require.NoError(t, err)
	parts := generator.Decompose(second)
	assert.Equal(t, start, parts.Timestamp)
	assert.Equal(t, int64(1), parts.Sequence)
}

func TestDistinctWorkersProduceDisjointIDs(t *testing.T) {
	clock := &fakeClock{now: time.Now().UnixMilli()}

	a, err := generator.NewWithClock(1, 2, clock.read)
	require.NoError(t, err)
	b, err := generator.NewWithClock(1, 3, clock.read)
	require.NoError(t, err)
	c, err := generator.NewWithClock(2, 2, clock.read)
	require.NoError(t, err)

	idA, err := a.Generate()
	require.NoError(t, err)
	idB, err := b.Generate()
	require.NoError(t, err)
	idC, err := c.Generate()
	require.NoError(t, err)

	// Same timestamp and sequence, yet all distinct: the (datacenter,
	// worker) fields partition the ID space.
	assert.Equal(t, int64(2), generator.Decompose(idA).WorkerID)
	assert.Equal(t, int64(3), generator.Decompose(idB).WorkerID)
	assert.Equal(t, int64(1), generator.Decompose(idA).DatacenterID)
	assert.Equal(t, int64(2), generator.Decompose(idC).DatacenterID)
	assert.NotEqual(t, idA, idB)
	assert.NotEqual(t, idA, idC)
	assert.NotEqual(t, idB, idC)
}

func TestDecomposeRoundTrip(t *testing.T) {
	before := time.Now().UnixMilli()
	gen, err := generator.New(11, 23)
	require.NoError(t, err)

	id, err := gen.Generate()
	require.NoError(t, err)
	after := time.Now().UnixMilli()

	require.GreaterOrEqual(t, id, int64(0), "sign bit must stay clear")

	parts := generator.Decompose(id)
	assert.Equal(t, int64(11), parts.DatacenterID)
	assert.Equal(t, int64(23), parts.WorkerID)
	assert.Equal(t, int64(0), parts.Sequence)
	assert.GreaterOrEqual(t, parts.Timestamp, before)
	assert.LessOrEqual(t, parts.Timestamp, after)

	extracted := generator.ExtractTime(id).UnixMilli()
	assert.Equal(t, parts.Timestamp, extracted)
}

func TestTimestampReportsClock(t *testing.T) {
	clock := &fakeClock{now: 1234567}
	gen, err := generator.NewWithClock(0, 0, clock.read)
	require.NoError(t, err)

	assert.Equal(t, int64(1234567), gen.Timestamp())
}
