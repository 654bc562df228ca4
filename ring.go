// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytering

import (
	"code.hybscloud.com/atomix"
)

// pad is cache line padding to prevent false sharing between the head
// and tail counters and the fields around them.
type pad [defaultCacheLineSize]byte

// Ring is a single-producer single-consumer lock-free byte ring buffer.
//
// Based on Lamport's ring buffer: the producer owns and mutates tail
// (write count), the consumer owns and mutates head (read count), and
// each side publishes its counter with a release-store so the other side
// observes it with an acquire-load. Storage bytes in [head, tail) are
// valid payload; bytes outside that window are free slots.
//
// Capacity is always a power of two. Use NewRing to construct one, then
// Producer and Consumer to obtain the two non-copyable handles — one for
// each side's operations.
type Ring struct {
	_          pad
	readCount  atomix.Uint64 // consumer publishes here (head)
	_          pad
	writeCount atomix.Uint64 // producer publishes here (tail)
	_          pad

	capacity uint64
	mask     uint64
	storage  []byte
	cfg      Config
	closed   atomix.Bool

	producerBound atomix.Bool
	producerCtx   uint64
	consumerBound atomix.Bool
	consumerCtx   uint64

	producer Producer
	consumer Consumer
}

// Producer is the write-side handle of a Ring. It is not safe to copy or
// to call from more than one goroutine at a time.
type Producer struct {
	_    noCopy
	ring *Ring
}

// Consumer is the read-side handle of a Ring. It is not safe to copy or
// to call from more than one goroutine at a time.
type Consumer struct {
	_    noCopy
	ring *Ring
}

// NewRing allocates a ring whose capacity is the next power of two at
// least minCapacity. minCapacity must be positive.
//
// NewRing returns ErrInvalidArgument if an option supplies a non-power-
// of-two alignment, and ErrOutOfMemory if the configured allocator fails.
func NewRing(minCapacity int, opts ...Option) (*Ring, error) {
	if minCapacity < 1 {
		minCapacity = 1
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if !isPow2(cfg.alignment) {
		return nil, ErrInvalidArgument
	}

	capacity := roundToPow2(minCapacity)
	storage, err := cfg.alloc(capacity, cfg.alignment)
	if err != nil {
		return nil, ErrOutOfMemory
	}

	r := &Ring{
		capacity: uint64(capacity),
		mask:     uint64(capacity - 1),
		storage:  storage,
		cfg:      cfg,
	}
	r.producer.ring = r
	r.consumer.ring = r
	return r, nil
}

// Cap returns the ring's actual capacity in bytes.
func (r *Ring) Cap() int {
	return int(r.capacity)
}

// Producer returns the write-side handle. Safe to call more than once;
// every call returns the same handle.
func (r *Ring) Producer() *Producer {
	return &r.producer
}

// Consumer returns the read-side handle. Safe to call more than once;
// every call returns the same handle.
func (r *Ring) Consumer() *Consumer {
	return &r.consumer
}

// BindProducer records the calling goroutine as the ring's producer. When
// debugging is enabled (the default), any later producer-side call from a
// different goroutine is reported as a contract violation. BindProducer
// itself is not safe to call concurrently with producer operations, and
// should happen once, before the producer goroutine starts its loop.
func (r *Ring) BindProducer() {
	if !r.cfg.debug {
		return
	}
	r.producerCtx = currentGoroutineID()
	r.producerBound.StoreRelease(true)
}

// BindConsumer records the calling goroutine as the ring's consumer. See
// BindProducer.
func (r *Ring) BindConsumer() {
	if !r.cfg.debug {
		return
	}
	r.consumerCtx = currentGoroutineID()
	r.consumerBound.StoreRelease(true)
}

// Reset returns the ring to empty without reallocating storage or
// rebinding producer/consumer. Not safe to call while either side is
// operating concurrently — the caller must quiesce both first.
func (r *Ring) Reset() {
	r.writeCount.StoreRelaxed(0)
	r.readCount.StoreRelaxed(0)
}

// Close releases the ring's storage via the configured free hook and
// marks the ring unusable. Tolerates a nil receiver and a double Close.
func (r *Ring) Close() {
	if r == nil || r.closed.LoadAcquire() {
		return
	}
	r.closed.StoreRelease(true)
	if r.cfg.free != nil {
		r.cfg.free(r.storage)
	}
	r.storage = nil
}

func (r *Ring) assertOpen() {
	if !r.cfg.debug {
		return
	}
	r.cfg.assert(!r.closed.LoadAcquire(), "ring used after Close")
}

func (p *Producer) assertBound() {
	r := p.ring
	r.assertOpen()
	if !r.cfg.debug || !r.producerBound.LoadAcquire() {
		return
	}
	r.cfg.assert(currentGoroutineID() == r.producerCtx, "producer accessed from unbound goroutine")
}

func (c *Consumer) assertBound() {
	r := c.ring
	r.assertOpen()
	if !r.cfg.debug || !r.consumerBound.LoadAcquire() {
		return
	}
	r.cfg.assert(currentGoroutineID() == c.ring.consumerCtx, "consumer accessed from unbound goroutine")
}
