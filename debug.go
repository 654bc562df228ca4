// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytering

import (
	"runtime"
	"strconv"
)

// currentGoroutineID returns an identifier for the calling goroutine.
//
// Go does not expose a stable goroutine handle, so this parses the id out
// of the leading "goroutine N [...]:" line of a stack trace captured for
// just this goroutine. It is only ever called when debug binding is
// enabled, and only on the bind/assert slow path — never from a hot copy
// loop — so the cost of the allocation-free parse is acceptable.
func currentGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	const prefix = "goroutine "
	if len(b) <= len(prefix) {
		return 0
	}
	b = b[len(prefix):]

	i := 0
	for i < len(b) && b[i] != ' ' {
		i++
	}
	id, _ := strconv.ParseUint(string(b[:i]), 10, 64)
	return id
}

// noCopy embeds into a struct to make `go vet`'s copylocks check flag
// accidental copies of Producer/Consumer handles.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
