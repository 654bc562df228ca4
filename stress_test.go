// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytering_test

import (
	"bytes"
	"math/rand"
	"testing"

	"code.hybscloud.com/bytering"
)

// TestWrapCorrectness covers property P3: for any capacity, any
// interleaving of writes and reads whose total exceeds capacity produces
// the same byte stream on the consumer side as was supplied to the
// producer side.
func TestWrapCorrectness(t *testing.T) {
	capacities := []int{2, 4, 8, 16, 64}
	for _, cap := range capacities {
		r, err := bytering.NewRing(cap)
		if err != nil {
			t.Fatalf("NewRing(%d): %v", cap, err)
		}
		p, c := r.Producer(), r.Consumer()

		rng := rand.New(rand.NewSource(int64(cap)*7919 + 1))
		const total = 10_000
		src := make([]byte, total)
		rng.Read(src)

		var got bytes.Buffer
		got.Grow(total)

		var written int
		chunk := make([]byte, 0, cap)
		for written < total || got.Len() < total {
			if written < total {
				n := 1 + rng.Intn(cap)
				if n > total-written {
					n = total - written
				}
				chunk = append(chunk[:0], src[written:written+n]...)
				written += p.Write(chunk)
			}
			if av := c.ReadAvail(); av > 0 {
				buf := make([]byte, av)
				n := c.Read(buf)
				got.Write(buf[:n])
			}
		}
		if !bytes.Equal(got.Bytes(), src) {
			t.Fatalf("capacity %d: byte stream mismatch (got %d bytes, want %d)", cap, got.Len(), len(src))
		}
	}
}

// TestFIFOOrderAcrossPeekAndRead covers property P1: peeks return the
// same bytes that subsequent reads consume, and reads observe a prefix
// of the producer's stream in order.
func TestFIFOOrderAcrossPeekAndRead(t *testing.T) {
	r, err := bytering.NewRing(16)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	p, c := r.Producer(), r.Consumer()

	src := []byte("0123456789ABCDEF0123456789ABCDEF")
	var out bytes.Buffer

	i := 0
	for i < len(src) || !c.IsEmpty() {
		if i < len(src) {
			i += p.Write(src[i:min(i+5, len(src))])
		}
		if av := int(c.ReadAvail()); av > 0 {
			peek := make([]byte, av)
			if n := c.Peek(peek); n != av {
				t.Fatalf("Peek: got %d, want %d", n, av)
			}
			read := make([]byte, av)
			if n := c.Read(read); n != av {
				t.Fatalf("Read: got %d, want %d", n, av)
			}
			if !bytes.Equal(peek, read) {
				t.Fatalf("peek/read mismatch: %q vs %q", peek, read)
			}
			out.Write(read)
		}
	}
	if out.String() != string(src) {
		t.Fatalf("FIFO order violated: got %q, want %q", out.String(), src)
	}
}
