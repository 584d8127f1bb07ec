package coordination

import (
	"context"
	"errors"
)

var (
	// ErrNodeExists signals that another live process already holds the key.
	// The worker-id allocator treats it as "try the next slot", not a fault.
	ErrNodeExists = errors.New("node already exists")

	ErrNotFound = errors.New("key not found")
)

// Store is the slice of a coordination service this fleet needs: atomic
// create-if-absent of liveness-bound nodes, point reads, and child listing.
// Liveness-bound means the node disappears when the owning process's session
// ends, which is how crashed workers release their slots.
type Store interface {
	// CreateLive atomically creates key=value bound to this process's
	// session. Returns ErrNodeExists if the key is already held.
	CreateLive(ctx context.Context, key, value string) error

	// Get reads a single key. Returns ErrNotFound if it is absent.
	Get(ctx context.Context, key string) (string, error)

	// ListChildren returns the immediate children under prefix, keyed by
	// child name. A missing prefix yields an empty map.
	ListChildren(ctx context.Context, prefix string) (map[string]string, error)

	// Close ends the session, releasing every liveness-bound node this
	// process created.
	Close() error
}
