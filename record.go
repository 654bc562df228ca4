// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytering

import "unsafe"

// Record adapts the byte-oriented all-or-nothing operations to a single
// fixed-layout type T, the generic equivalent of the teacher queue's
// typed slot (SPSC[T]) and pointer (SPSCPtr) convenience types. It adds
// no framing of its own: a caller that writes values of more than one
// size must frame the stream itself.
type Record[T any] struct{}

// WriteAll writes *v as a whole. See (*Producer).WriteAll.
func (Record[T]) WriteAll(p *Producer, v *T) bool {
	return p.WriteAll(recordBytes(v))
}

// ReadAll reads a whole T into *v. See (*Consumer).ReadAll.
func (Record[T]) ReadAll(c *Consumer, v *T) bool {
	return c.ReadAll(recordBytes(v))
}

// PeekAll peeks a whole T into *v without consuming it. See
// (*Consumer).PeekAll.
func (Record[T]) PeekAll(c *Consumer, v *T) bool {
	return c.PeekAll(recordBytes(v))
}

// SkipAll discards one T-sized record. See (*Consumer).SkipAll.
func (Record[T]) SkipAll(c *Consumer) bool {
	var zero T
	return c.SkipAll(uint64(unsafe.Sizeof(zero)))
}

func recordBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
