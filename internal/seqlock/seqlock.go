// Package seqlock implements a single-writer/multi-reader optimistic lock:
// an even/odd version counter a reader can use to detect a concurrent write
// without ever blocking the writer. It is the concurrency primitive behind
// SegmentedHashIndex and the two primitive-key indexes, LongPrimitiveIndex
// and IntPrimitiveIndex.
//
// The pattern: a writer increments the counter (entering the odd, "locked"
// state), mutates, then increments again (returning to even). A reader
// snapshots the counter, reads the protected data, then checks the counter
// is unchanged and even; if not, it retries. There is no blocking on the
// read side and no allocation on either side.
package seqlock

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// SeqLock guards a single shard's mutable state with an optimistic-read
// fast path and a mutex-protected slow path for writers.
type SeqLock struct {
	version atomic.Uint64
	mu      sync.Mutex
}

// TryOptimisticRead returns the current version stamp if it is even (no
// writer in progress). A caller that observes an odd stamp should spin
// briefly and retry rather than proceed with a read.
func (s *SeqLock) TryOptimisticRead() (stamp uint64, ok bool) {
	v := s.version.Load()
	return v, v%2 == 0
}

// Validate reports whether the version is still stamp, i.e. no writer ran
// between the caller's TryOptimisticRead and this call. A false result
// means the read must be discarded and retried.
func (s *SeqLock) Validate(stamp uint64) bool {
	return s.version.Load() == stamp
}

// RLock performs a full optimistic-read cycle around fn: it retries fn
// until it can prove no writer interleaved with the read. fn must be a
// pure read with no observable side effects, since it may run more than
// once.
func (s *SeqLock) RLock(fn func() (any, bool)) any {
	for {
		stamp, ok := s.TryOptimisticRead()
		if !ok {
			runtime.Gosched()
			continue
		}
		val, found := fn()
		if s.Validate(stamp) {
			if !found {
				return nil
			}
			return val
		}
		runtime.Gosched()
	}
}

// Lock acquires the writer slow path and bumps the version to the next odd
// value, marking the shard as being mutated.
func (s *SeqLock) Lock() {
	s.mu.Lock()
	s.version.Add(1)
}

// Unlock bumps the version back to even and releases the writer slow path.
func (s *SeqLock) Unlock() {
	s.version.Add(1)
	s.mu.Unlock()
}
