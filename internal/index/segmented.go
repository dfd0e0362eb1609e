package index

import (
	"hash/maphash"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/iamNilotpal/ignite/internal/codec"
	"github.com/iamNilotpal/ignite/internal/seqlock"
)

// segment is one independently-locked shard of a SegmentedHashIndex. Its
// seqlock.SeqLock gives Get a lock-free optimistic read path, the same way
// LongPrimitiveIndex and IntPrimitiveIndex guard their slot arrays: a writer
// bumps the version to odd before mutating entries and back to even after,
// and a reader retries until it observes a stable even version around its
// read.
type segment[K comparable] struct {
	lock    seqlock.SeqLock
	entries map[K]Entry
}

// SegmentedHashIndex shards its keyspace across a fixed, power-of-two number
// of independently-locked segments, the same way a sharded concurrent map
// spreads contention across many small locks instead of funneling every
// goroutine through one. Reads and writes only ever take the lock for the
// one segment their key hashes to, so unrelated keys never contend.
//
// Shard assignment hashes the key's codec-encoded bytes with hash/maphash,
// seeded once per index so the same key always lands on the same segment
// for the life of the index.
type SegmentedHashIndex[K comparable] struct {
	log      *zap.SugaredLogger
	keyCodec codec.KeyCodec[K]
	seed     maphash.Seed
	segments []*segment[K]
	mask     uint64
	closed   atomic.Bool
}

// NewSegmented creates a SegmentedHashIndex with shardCount segments, which
// must already be a power of two (pkg/options.WithSegments rounds up to one;
// the mask is otherwise wrong and some shards go unused).
// initialCapacity is distributed evenly across the segments' starting map
// sizes.
func NewSegmented[K comparable](
	log *zap.SugaredLogger, keyCodec codec.KeyCodec[K], shardCount, initialCapacity uint32,
) *SegmentedHashIndex[K] {
	if shardCount == 0 {
		shardCount = 1
	}
	perShard := initialCapacity/shardCount + 1

	segments := make([]*segment[K], shardCount)
	for i := range segments {
		segments[i] = &segment[K]{entries: make(map[K]Entry, perShard)}
	}

	return &SegmentedHashIndex[K]{
		log:      log,
		keyCodec: keyCodec,
		seed:     maphash.MakeSeed(),
		segments: segments,
		mask:     uint64(shardCount - 1),
	}
}

func (idx *SegmentedHashIndex[K]) segmentFor(key K) *segment[K] {
	var h maphash.Hash
	h.SetSeed(idx.seed)
	h.Write(idx.keyCodec.EncodeKey(key))
	return idx.segments[h.Sum64()&idx.mask]
}

func (idx *SegmentedHashIndex[K]) PutAndGetOld(key K, entry Entry) (Entry, bool) {
	s := idx.segmentFor(key)
	s.lock.Lock()
	defer s.lock.Unlock()
	old, existed := s.entries[key]
	s.entries[key] = entry
	return old, existed
}

// Get takes the optimistic fast path first: it snapshots the segment's
// version, reads entries without blocking a concurrent writer, then
// validates the version hasn't moved. A failed validation means a write
// interleaved with the read, so it retries rather than returning a
// potentially torn result.
func (idx *SegmentedHashIndex[K]) Get(key K) (Entry, bool) {
	s := idx.segmentFor(key)
	for {
		stamp, ok := s.lock.TryOptimisticRead()
		if !ok {
			runtime.Gosched()
			continue
		}

		e, found := s.entries[key]

		if s.lock.Validate(stamp) {
			return e, found
		}
	}
}

func (idx *SegmentedHashIndex[K]) RemoveAndGetOld(key K) (Entry, bool) {
	s := idx.segmentFor(key)
	s.lock.Lock()
	defer s.lock.Unlock()
	old, existed := s.entries[key]
	if existed {
		delete(s.entries, key)
	}
	return old, existed
}

func (idx *SegmentedHashIndex[K]) Len() int {
	total := 0
	for _, s := range idx.segments {
		for {
			stamp, ok := s.lock.TryOptimisticRead()
			if !ok {
				runtime.Gosched()
				continue
			}
			n := len(s.entries)
			if s.lock.Validate(stamp) {
				total += n
				break
			}
		}
	}
	return total
}

func (idx *SegmentedHashIndex[K]) Clear() {
	for _, s := range idx.segments {
		s.lock.Lock()
		clear(s.entries)
		s.lock.Unlock()
	}
}

func (idx *SegmentedHashIndex[K]) ForEach(fn func(key K, entry Entry) bool) {
	for _, s := range idx.segments {
		s.lock.Lock()
		for k, e := range s.entries {
			if !fn(k, e) {
				s.lock.Unlock()
				return
			}
		}
		s.lock.Unlock()
	}
}

func (idx *SegmentedHashIndex[K]) Close() error {
	if !idx.closed.CompareAndSwap(false, true) {
		return ErrIndexClosed
	}
	for _, s := range idx.segments {
		s.lock.Lock()
		clear(s.entries)
		s.entries = nil
		s.lock.Unlock()
	}
	if idx.log != nil {
		idx.log.Infow("segmented hash index closed", "segments", len(idx.segments))
	}
	return nil
}

var _ Index[string] = (*SegmentedHashIndex[string])(nil)
