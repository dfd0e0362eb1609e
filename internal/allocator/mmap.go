package allocator

import (
	"sync/atomic"

	"github.com/iamNilotpal/ignite/pkg/errors"
)

// MmapAllocator is a pure bump allocator over the payload area of a
// memory-mapped file: every Allocate moves a single monotonically
// increasing offset forward by size bytes via compare-and-swap, never
// reclaiming space on Free. Persistence tracks one offset, not a free-list,
// and a removed key's bytes are simply abandoned until the whole store is
// recreated.
//
// The offset returned by Allocate is relative to the start of the payload
// area, i.e. it excludes the fixed-size header the storage layer keeps at
// the front of the file. CurrentOffset reports the value the engine
// persists into that header on Close.
type MmapAllocator struct {
	allocateSize uint64
	current      atomic.Uint64
}

// NewMmap creates a fresh MmapAllocator with nothing allocated yet. The bump
// pointer starts at reservedOffset rather than 0, since offset 0 must never
// be a valid Allocate result (see SlabAllocator's reservedOffset).
func NewMmap(allocateSize uint64) *MmapAllocator {
	a := &MmapAllocator{allocateSize: allocateSize}
	a.current.Store(reservedOffset)
	return a
}

// RestoreMmap recreates an MmapAllocator from a persisted header, resuming
// the bump pointer exactly where it left off.
func RestoreMmap(allocateSize, currentOffset uint64) *MmapAllocator {
	a := &MmapAllocator{allocateSize: allocateSize}
	a.current.Store(currentOffset)
	return a
}

func (a *MmapAllocator) Allocate(size uint32) (uint64, error) {
	if size == 0 {
		return 0, errors.NewInvalidSizeError(size)
	}
	for {
		old := a.current.Load()
		next := old + uint64(size)
		if next > a.allocateSize {
			return 0, errors.NewOutOfSpaceError(size, a.allocateSize-old)
		}
		if a.current.CompareAndSwap(old, next) {
			return old, nil
		}
	}
}

// Free is a no-op: the mmap allocator never reclaims space. A caller that
// wants the bytes back has to recreate the store.
func (a *MmapAllocator) Free(offset uint64, size uint32) {}

// CurrentOffset reports the bump pointer's current value, i.e. the payload
// offset where the next allocation starts (reservedOffset plus the bytes
// handed out so far). The engine persists this into the file header.
func (a *MmapAllocator) CurrentOffset() uint64 { return a.current.Load() }

func (a *MmapAllocator) Used() uint64      { return a.current.Load() }
func (a *MmapAllocator) Total() uint64     { return a.allocateSize }
func (a *MmapAllocator) Available() uint64 { return a.allocateSize - a.current.Load() }

// Close is a no-op: the backing region and file belong to the storage
// layer, which unmaps and closes them itself.
func (a *MmapAllocator) Close() error { return nil }
