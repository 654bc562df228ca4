// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytering

// ReadAvail returns the number of bytes available to read. Loads the
// producer's write count with acquire ordering and the consumer's own
// read count with relaxed ordering.
func (c *Consumer) ReadAvail() uint64 {
	c.assertBound()
	r := c.ring
	write := r.writeCount.LoadAcquire()
	read := r.readCount.LoadRelaxed()
	return write - read
}

// IsEmpty reports whether ReadAvail is zero.
func (c *Consumer) IsEmpty() bool {
	return c.ReadAvail() == 0
}

// Read copies up to len(dst) bytes out of the ring, truncating to
// ReadAvail if necessary, and publishes the new read count with a
// release-store. Returns the number of bytes actually copied; a zero
// return means either dst was empty or the ring was empty.
func (c *Consumer) Read(dst []byte) int {
	n := uint64(len(dst))
	if avail := c.ReadAvail(); n > avail {
		n = avail
	}
	if n == 0 {
		return 0
	}
	c.copyOut(dst[:n])
	c.publish(n)
	return int(n)
}

// ReadAll copies exactly len(dst) bytes, or none at all. Returns false
// (no side effects) if dst is empty or longer than ReadAvail; otherwise
// copies into all of dst and publishes the new read count, returning
// true.
func (c *Consumer) ReadAll(dst []byte) bool {
	n := uint64(len(dst))
	avail := c.ReadAvail()
	if n == 0 || n > avail {
		return false
	}
	c.copyOut(dst)
	c.publish(n)
	return true
}

// Peek behaves like Read but does not publish a new read count: the
// bytes remain in the ring and may be read again, peeked again, or
// discarded with Skip.
func (c *Consumer) Peek(dst []byte) int {
	n := uint64(len(dst))
	if avail := c.ReadAvail(); n > avail {
		n = avail
	}
	if n == 0 {
		return 0
	}
	c.copyOut(dst[:n])
	return int(n)
}

// PeekAll behaves like ReadAll but does not publish a new read count.
func (c *Consumer) PeekAll(dst []byte) bool {
	n := uint64(len(dst))
	avail := c.ReadAvail()
	if n == 0 || n > avail {
		return false
	}
	c.copyOut(dst)
	return true
}

// Skip discards up to n bytes from the head of the ring without copying
// them anywhere, truncating to ReadAvail. Returns the number of bytes
// actually discarded. Unlike SkipAll, n == 0 is accepted and returns 0.
func (c *Consumer) Skip(n uint64) uint64 {
	if avail := c.ReadAvail(); n > avail {
		n = avail
	}
	if n == 0 {
		return 0
	}
	c.publish(n)
	return n
}

// SkipAll discards exactly n bytes, or none at all. Returns false if n is
// zero or greater than ReadAvail; otherwise discards n bytes and
// publishes the new read count, returning true.
func (c *Consumer) SkipAll(n uint64) bool {
	avail := c.ReadAvail()
	if n == 0 || n > avail {
		return false
	}
	c.publish(n)
	return true
}

// copyOut copies from storage starting at the current read index into
// dst, wrapping around the end of storage if necessary. Caller
// guarantees len(dst) <= ReadAvail.
func (c *Consumer) copyOut(dst []byte) {
	r := c.ring
	read := r.readCount.LoadRelaxed()
	idx := read & r.mask

	first := r.capacity - idx
	if n := uint64(len(dst)); n < first {
		first = n
	}
	copy(dst[:first], r.storage[idx:idx+first])
	if rem := uint64(len(dst)) - first; rem > 0 {
		copy(dst[first:], r.storage[:rem])
	}
}

// publish advances and releases the read count by n, freeing n bytes for
// the producer.
func (c *Consumer) publish(n uint64) {
	r := c.ring
	read := r.readCount.LoadRelaxed()
	r.readCount.StoreRelease(read + n)
}
