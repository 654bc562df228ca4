// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bytering provides a single-producer / single-consumer (SPSC)
// lock-free byte ring buffer.
//
// # Quick Start
//
//	r, err := bytering.NewRing(4096)
//	if err != nil {
//	    // handle ErrInvalidArgument / ErrOutOfMemory
//	}
//	defer r.Close()
//
//	p := r.Producer()
//	c := r.Consumer()
//
//	p.WriteAll([]byte("hello"))
//	buf := make([]byte, 5)
//	c.ReadAll(buf)
//
// # Pipeline Stage
//
// The ring is meant to hand bytes from one goroutine to another, the way
// a stage in a pipeline hands data to the next stage:
//
//	r, _ := bytering.NewRing(1 << 16)
//	p, c := r.Producer(), r.Consumer()
//
//	go func() { // producer goroutine
//	    backoff := iox.Backoff{}
//	    for _, chunk := range chunks {
//	        for !p.WriteAll(chunk) {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // consumer goroutine
//	    backoff := iox.Backoff{}
//	    buf := make([]byte, chunkSize)
//	    for {
//	        if !c.ReadAll(buf) {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(buf)
//	    }
//	}()
//
// # Best-Effort vs All-or-Nothing
//
// Write/Read/Skip transfer up to the requested amount and report how much
// actually moved. WriteAll/ReadAll/PeekAll/SkipAll transfer exactly the
// requested amount or nothing, reporting success as a bool — a zero-length
// request is reported as "no transaction happened" (false), which is why
// the two families disagree on what a zero-length call means.
//
// # Capacity
//
// Capacity rounds up to the next power of two:
//
//	r, _ := bytering.NewRing(1000)  // actual capacity: 1024
//	r, _ := bytering.NewRing(1024)  // actual capacity: 1024
//
// # Ordering
//
// WriteAll publishes new bytes to the consumer with a release-store;
// ReadAll/SkipAll observe them with an acquire-load, and publish freed
// space back to the producer the same way. The ring performs no
// synchronization beyond that pair of counters — exactly one producer
// goroutine and one consumer goroutine may call their respective sides.
//
// # No Internal Blocking
//
// The ring never blocks, sleeps, or parks a caller. WriteAvail/ReadAvail
// and the boolean/count return values are the only backpressure signal;
// callers choose their own spin, yield, or sleep strategy, typically with
// [code.hybscloud.com/iox.Backoff] as shown above.
//
// # Debug Binding
//
// When debugging is enabled (the default), BindProducer/BindConsumer
// record the calling goroutine so that a later call from any other
// goroutine is reported as a contract violation instead of silently
// corrupting the ring. Disable via WithDebug(false) once a design is
// verified, to remove the per-call check.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for the counters with
// explicit acquire/release/relaxed memory ordering. ErrInvalidArgument
// and ErrOutOfMemory are plain sentinel errors, deliberately not routed
// through [code.hybscloud.com/iox]'s semantic-error helpers: those exist
// to mark a result as a non-failure (would-block), and construction
// failures are real failures. iox is instead wired at the caller's
// boundary, for backoff between retries, as shown above and in this
// package's tests. It does not use [code.hybscloud.com/spin] internally
// — like the wait-free SPSC queue this package is adapted from, there is
// nothing to spin on inside a non-blocking ring — but the concurrent
// producer/consumer test uses it for a tighter caller-side busy-wait than
// Backoff provides.
package bytering
