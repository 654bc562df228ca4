// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytering

// WriteAvail returns the number of bytes that can be written without
// blocking. Loads the consumer's read count with acquire ordering and the
// producer's own write count with relaxed ordering.
func (p *Producer) WriteAvail() uint64 {
	p.assertBound()
	r := p.ring
	read := r.readCount.LoadAcquire()
	write := r.writeCount.LoadRelaxed()
	return r.capacity - (write - read)
}

// IsFull reports whether WriteAvail is zero.
func (p *Producer) IsFull() bool {
	return p.WriteAvail() == 0
}

// Write copies up to len(src) bytes into the ring, truncating to
// WriteAvail if necessary, and publishes the new write count with a
// release-store. Returns the number of bytes actually written; a zero
// return means either src was empty or the ring was full.
func (p *Producer) Write(src []byte) int {
	n := uint64(len(src))
	if avail := p.WriteAvail(); n > avail {
		n = avail
	}
	if n == 0 {
		return 0
	}
	p.copyIn(src[:n])
	return int(n)
}

// WriteAll writes exactly len(src) bytes, or none at all. Returns false
// (no side effects) if src is empty or longer than WriteAvail; otherwise
// copies all of src and publishes the new write count, returning true.
func (p *Producer) WriteAll(src []byte) bool {
	n := uint64(len(src))
	avail := p.WriteAvail()
	if n == 0 || n > avail {
		return false
	}
	p.copyIn(src)
	return true
}

// copyIn copies src into storage starting at the current write index,
// wrapping around the end of storage if necessary, then publishes the
// advanced write count. Caller guarantees len(src) <= WriteAvail.
func (p *Producer) copyIn(src []byte) {
	r := p.ring
	write := r.writeCount.LoadRelaxed()
	idx := write & r.mask

	first := r.capacity - idx
	if n := uint64(len(src)); n < first {
		first = n
	}
	copy(r.storage[idx:idx+first], src[:first])
	if rem := uint64(len(src)) - first; rem > 0 {
		copy(r.storage[:rem], src[first:])
	}

	r.writeCount.StoreRelease(write + uint64(len(src)))
}
