// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytering

import "unsafe"

// defaultCacheLineSize is the assumed cache line width used to size the
// padding between the head and tail counters.
const defaultCacheLineSize = 64

// defaultAlignment approximates the widest fundamental alignment of the
// host (the Go analogue of max_align_t): wide enough for any fixed-layout
// record a caller is likely to frame with Record[T], including complex128.
const defaultAlignment = 16

// AllocFunc allocates size bytes of storage whose first byte sits at an
// address that is a multiple of alignment. It is called exactly once,
// from NewRing.
type AllocFunc func(size int, alignment int) ([]byte, error)

// FreeFunc releases a slice previously returned by an AllocFunc. It is
// called at most once, from (*Ring).Close.
type FreeFunc func([]byte)

// AssertFunc reports a contract violation (spec §7, category 4) when cond
// is false. The default panics; a caller-supplied AssertFunc can log,
// capture a stack, or integrate with an existing test harness instead.
type AssertFunc func(cond bool, msg string)

// Config collects the construction-time options recognized by NewRing.
type Config struct {
	alignment     int
	cacheLineSize int
	debug         bool
	alloc         AllocFunc
	free          FreeFunc
	assert        AssertFunc
}

// Option configures a Ring at construction time.
type Option func(*Config)

// WithAlignment sets the alignment of the storage buffer. Must be a power
// of two; NewRing returns ErrInvalidArgument otherwise.
func WithAlignment(n int) Option {
	return func(c *Config) { c.alignment = n }
}

// WithCacheLineSize records a cache line width and, while the storage
// alignment still holds its default value, uses that width as the storage
// alignment. It does not change the padding between the head and tail
// counters, which is fixed at defaultCacheLineSize bytes.
func WithCacheLineSize(n int) Option {
	return func(c *Config) {
		c.cacheLineSize = n
		if c.alignment == defaultAlignment {
			c.alignment = n
		}
	}
}

// WithDebug toggles thread-safety debugging. When disabled, BindProducer
// and BindConsumer become no-ops and the per-operation context checks are
// elided. Enabled by default.
func WithDebug(enabled bool) Option {
	return func(c *Config) { c.debug = enabled }
}

// WithAllocator replaces the default heap allocator and its matching free
// hook.
func WithAllocator(alloc AllocFunc, free FreeFunc) Option {
	return func(c *Config) {
		c.alloc = alloc
		c.free = free
	}
}

// WithAssert replaces the default abort-on-violation assertion.
func WithAssert(fn AssertFunc) Option {
	return func(c *Config) { c.assert = fn }
}

func defaultConfig() Config {
	return Config{
		alignment:     defaultAlignment,
		cacheLineSize: defaultCacheLineSize,
		debug:         true,
		alloc:         defaultAlloc,
		free:          nil,
		assert:        defaultAssert,
	}
}

func defaultAssert(cond bool, msg string) {
	if !cond {
		panic("bytering: " + msg)
	}
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// defaultAlloc allocates a slice of exactly size bytes whose backing
// address is a multiple of alignment, by over-allocating and trimming to
// the first aligned offset — the same manual-alignment trick used for
// page- or cache-line-aligned DMA and io_uring buffers.
func defaultAlloc(size int, alignment int) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	raw := make([]byte, size+alignment-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	offset := (alignment - int(addr%uintptr(alignment))) % alignment
	return raw[offset : offset+size : offset+size], nil
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
