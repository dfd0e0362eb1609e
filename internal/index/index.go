// Package index provides the in-memory key -> (address, size) mapping that
// sits in front of an off-heap or memory-mapped store. It deliberately
// keeps the same philosophy its predecessor embodied for a disk-backed
// layout — keep all keys resident in memory behind compact metadata — but
// every entry now points at a byte range inside a mem.Region instead of a
// byte offset inside a segment file.
//
// Four variants implement Index, selected by pkg/options.IndexVariant:
// HashIndex (a plain mutex-guarded map, the general-purpose default),
// SegmentedHashIndex (sharded with per-shard optimistic reads, for higher
// read concurrency), and LongPrimitiveIndex/IntPrimitiveIndex (open-addressed
// arrays for int64/int32 keys, avoiding the hashmap's per-entry boxing
// entirely). All four share the same critical ordering contract: PutAndGetOld
// and RemoveAndGetOld are single atomic operations, never a get followed by
// a put, so a concurrent reader can never observe a window where a key maps
// to neither its old nor its new entry.
package index

import stdErrors "errors"

// ErrIndexClosed is returned by Close when the index was already closed.
var ErrIndexClosed = stdErrors.New("operation failed: cannot access closed index")

// Entry records where a value lives: Address is a region-relative byte
// offset, Size is the exact encoded length a codec.ValueCodec needs to
// decode it.
type Entry struct {
	Address uint64
	Size    int32
}

// Index maps keys of type K to Entry values. Implementations must make
// PutAndGetOld and RemoveAndGetOld atomic with respect to concurrent
// readers and writers: a caller must never be able to observe a state in
// which a just-overwritten or just-removed entry is visible neither as the
// old value nor as the new one.
type Index[K comparable] interface {
	// PutAndGetOld inserts entry for key and returns whatever Entry (and
	// presence flag) previously occupied that key, in one atomic step.
	PutAndGetOld(key K, entry Entry) (old Entry, existed bool)

	// Get returns the Entry stored for key, if any.
	Get(key K) (Entry, bool)

	// RemoveAndGetOld deletes key and returns whatever Entry (and presence
	// flag) it held, in one atomic step.
	RemoveAndGetOld(key K) (old Entry, existed bool)

	// Len returns the number of keys currently indexed.
	Len() int

	// Clear removes every entry, leaving the index usable but empty.
	Clear()

	// Close releases any resources the index holds. A repeated Close
	// returns ErrIndexClosed; the other methods have no error result and do
	// not report closure.
	Close() error

	// ForEach calls fn once for every indexed key, in no particular order,
	// stopping early if fn returns false. Mmap persistence (internal/engine)
	// uses this to walk every entry when serializing the index into a
	// file's relative-offset index section.
	ForEach(fn func(key K, entry Entry) bool)
}
