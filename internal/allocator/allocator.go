// Package allocator turns a byte-size request into an address inside a
// mem.Region. Two implementations exist: SlabAllocator for the OffHeap,
// free-list-recycling mode, and MmapAllocator for the append-only,
// persisted-offset mode backing a memory-mapped file.
package allocator

// Allocator is satisfied by both SlabAllocator and MmapAllocator. Addresses
// it returns are offsets into the payload area, not process pointers: for
// SlabAllocator that area is the whole region it was built on, for
// MmapAllocator it starts after the storage header, so callers add the
// storage's payload offset before resolving an address through the region.
type Allocator interface {
	// Allocate reserves size bytes and returns the offset of the first byte.
	// A successful call never returns offset 0 — that value is reserved so
	// it stays distinguishable from a zero-value index.Entry.Address.
	Allocate(size uint32) (uint64, error)

	// Free releases a previously allocated offset back to the allocator.
	// size must match the size passed to the Allocate call that produced
	// offset; the allocator does not independently track allocation sizes.
	Free(offset uint64, size uint32)

	// Used reports bytes currently considered live (allocated and not yet
	// freed).
	Used() uint64

	// Total reports the allocator's configured ceiling in bytes.
	Total() uint64

	// Available reports Total minus Used.
	Available() uint64

	// Close releases the allocator's resources. SlabAllocator closes the
	// region it was built on; MmapAllocator's Close does nothing, since its
	// region and file belong to the storage layer.
	Close() error
}

var (
	_ Allocator = (*SlabAllocator)(nil)
	_ Allocator = (*MmapAllocator)(nil)
)
