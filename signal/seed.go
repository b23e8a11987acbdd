package signal

import (
	"sync/atomic"
)

// seedStride is the seed spacing between noise generator instances.
// Deliberately not a power of two: with power-of-two strides the window
// seeds of distinct instances collide and the instances emit identical
// series.
const seedStride = 1<<32 - 1

// SeedAllocator hands out base seeds for noise generators. The counter is
// atomic, so generators may be constructed from any goroutine; construction
// order alone determines every instance's seed family, which makes a
// simulation that builds its sources in a fixed order reproducible end to
// end.
type SeedAllocator struct {
	next atomic.Uint64
}

// NewSeedAllocator returns an allocator starting at seed zero.
func NewSeedAllocator() *SeedAllocator {
	return &SeedAllocator{}
}

// Allocate returns the next base seed and advances the counter by the
// instance stride.
func (a *SeedAllocator) Allocate() uint64 {
	return a.next.Add(seedStride) - seedStride
}

// Reset restarts the allocator at zero, so subsequent generators repeat the
// seed sequence from the beginning.
func (a *SeedAllocator) Reset() {
	a.next.Store(0)
}

var defaultSeedAllocator = NewSeedAllocator()

// DefaultSeedAllocator returns the process-wide allocator used by
// NewGaussianNoise. It is the only piece of shared mutable state in the
// package.
func DefaultSeedAllocator() *SeedAllocator {
	return defaultSeedAllocator
}
