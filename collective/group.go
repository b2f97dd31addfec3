// Package collective provides the process-group substrate: blocking
// broadcast and barrier over a fixed set of ranks. Membership is static,
// rank 0 is the only broadcast source, and there is no failure detector:
// a participant that never shows up blocks the whole group, which is the
// accepted trade-off for a trusted, co-scheduled job.
package collective

import "context"

// Capabilities is resolved once per group at setup, never per call.
type Capabilities struct {
	// DeviceResident reports that the transport owns its buffers: payloads
	// must be staged in before a collective and read back after.
	DeviceResident bool
}

type Group interface {
	Rank() int
	Size() int

	// Broadcast blocks until every member of the group has entered the
	// call; on return buf holds the source rank's bytes on all ranks.
	// len(buf) must be identical across ranks.
	Broadcast(ctx context.Context, buf []byte, src int) error

	// Barrier blocks until every member has arrived, then releases all.
	Barrier(ctx context.Context) error

	Capabilities() Capabilities
	Close() error
}
