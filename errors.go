// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bytering

import "errors"

// ErrInvalidArgument is returned by NewRing when an alignment is not a
// power of two.
var ErrInvalidArgument = errors.New("bytering: invalid argument")

// ErrOutOfMemory is returned by NewRing when the configured allocator
// fails to produce storage.
var ErrOutOfMemory = errors.New("bytering: out of memory")

// Availability exhaustion (a full or empty ring) is not represented as an
// error anywhere in this package: best-effort operations (Write/Read/Skip)
// report it as a short count, and all-or-nothing operations (WriteAll/
// ReadAll/PeekAll/SkipAll) report it as a false return. Contract
// violations (wrong-side access, use after Close) panic through the
// configurable AssertFunc rather than returning an error, since they are
// not recoverable.
