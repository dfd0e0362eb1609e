// Package codec defines the encode/decode contract between a typed Go value
// and its raw byte representation at an address inside a mem.Region. Keys
// stay ordinary Go-heap values throughout — only values ever cross the
// address boundary, so KeyCodec and ValueCodec are distinct interfaces even
// though several concrete types (Int64, String, ...) implement both.
package codec

// ValueCodec knows how to size, encode, and decode values of type V at an
// address inside a mem.Region. Every method receives the region's address
// primitives indirectly: SizeOf never touches memory, Encode/Decode always
// do.
type ValueCodec[V any] interface {
	// SizeOf returns the number of bytes Encode will write for v. The
	// allocator is asked for exactly this many bytes before Encode runs.
	SizeOf(v V) int32

	// Encode writes v's byte representation starting at addr and returns the
	// number of bytes actually written. The caller guarantees at least
	// SizeOf(v) writable bytes are available there; a returned count that
	// doesn't equal SizeOf(v) tells the caller the write was short and the
	// allocation must not be indexed as if it held a complete value.
	Encode(addr uintptr, v V) (int32, error)

	// Decode reads a value of type V starting at addr, given the size
	// that was recorded for it at encode time (the index stores this size
	// alongside the address).
	Decode(addr uintptr, size int32) V
}

// KeyCodec knows how to turn a key of type K into bytes and back, used by
// indexes that hash a key's encoded form (SegmentedHashIndex) rather than
// relying on Go's built-in comparable semantics directly, and by the engine
// layer when it serializes an index's keys into an mmap store's index
// section on Close and has to recover them on the next Open.
type KeyCodec[K comparable] interface {
	// EncodeKey returns a byte representation of k suitable for hashing or
	// persisting.
	EncodeKey(k K) []byte

	// DecodeKey is EncodeKey's inverse, recovering a key from bytes
	// previously produced by EncodeKey.
	DecodeKey(data []byte) K
}
