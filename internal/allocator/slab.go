package allocator

import (
	"sync/atomic"

	"github.com/iamNilotpal/ignite/internal/mem"
	"github.com/iamNilotpal/ignite/pkg/errors"
)

// slabSizeClasses are the fixed bucket sizes a SlabAllocator rounds requests
// up to. A value beyond the largest class takes the oversize path instead of
// being rounded.
var slabSizeClasses = [...]uint32{16, 64, 256, 1024, 4096, 16384}

// noFree marks an empty free list.
const noFree = ^uint64(0)

// reservedOffset is the first offset bumpAllocate ever hands out. Offset 0
// must never be a valid allocation result — it is indistinguishable from a
// zero-value Entry.Address in an index that was never populated — so the
// bump counter starts here instead of at zero.
const reservedOffset = 8

// sizeClassState is one free list: a lock-free singly-linked stack of
// previously-freed blocks of exactly size bytes. The "next" pointer for a
// free block is stored in the block's own first eight bytes — the same
// intrusive-free-list trick for off-heap size-classed pooling, so a freed
// block costs no separate bookkeeping allocation.
type sizeClassState struct {
	size     uint32
	freeHead atomic.Uint64
}

// SlabAllocator carves a mem.Region into fixed size classes with per-class
// free lists, plus a bump path for handing out fresh blocks once a class's
// free list runs dry and for requests larger than the biggest class.
//
// It never returns address space to the OS: Free only makes a block
// available for reuse by a future Allocate that falls in the same size class.
// This matches an arena allocator's usual tradeoff — fast, contention-free
// reuse at the cost of never shrinking.
type SlabAllocator struct {
	region    *mem.Region
	maxMemory uint64

	bump    atomic.Uint64 // next never-yet-used offset
	used    atomic.Uint64
	classes [len(slabSizeClasses)]sizeClassState

	closed atomic.Bool
}

// NewSlab creates a SlabAllocator backed by region, capped at maxMemory
// bytes. region must already have at least maxMemory bytes available, or be
// able to grow to that size on demand (mem.Region.Grow).
func NewSlab(region *mem.Region, maxMemory uint64) *SlabAllocator {
	a := &SlabAllocator{region: region, maxMemory: maxMemory}
	a.bump.Store(reservedOffset)
	for i, size := range slabSizeClasses {
		a.classes[i].size = size
		a.classes[i].freeHead.Store(noFree)
	}
	return a
}

// classFor returns the index of the smallest size class that fits size, or
// -1 if size exceeds every class (the oversize path).
func classFor(size uint32) int {
	for i, class := range slabSizeClasses {
		if size <= class {
			return i
		}
	}
	return -1
}

func (a *SlabAllocator) Allocate(size uint32) (uint64, error) {
	if size == 0 {
		return 0, errors.NewInvalidSizeError(size)
	}
	if a.closed.Load() {
		return 0, errors.NewAllocatorError(nil, errors.ErrorCodeAlreadyClosed, "allocator is closed")
	}

	idx := classFor(size)
	if idx < 0 {
		return a.bumpAllocate(size)
	}
	class := &a.classes[idx]

	for {
		head := class.freeHead.Load()
		if head == noFree {
			break
		}
		next := uint64(mem.LoadInt64(a.region.Address(head)))
		if class.freeHead.CompareAndSwap(head, next) {
			a.used.Add(uint64(class.size))
			return head, nil
		}
	}

	return a.bumpAllocate(class.size)
}

func (a *SlabAllocator) bumpAllocate(size uint32) (uint64, error) {
	for {
		old := a.bump.Load()
		next := old + uint64(size)
		if next > a.maxMemory {
			return 0, errors.NewOutOfSpaceError(size, a.maxMemory-old)
		}
		if next > a.region.Length() {
			if err := a.region.Grow(next); err != nil {
				return 0, err
			}
		}
		if a.bump.CompareAndSwap(old, next) {
			a.used.Add(uint64(size))
			return old, nil
		}
	}
}

func (a *SlabAllocator) Free(offset uint64, size uint32) {
	idx := classFor(size)
	if idx < 0 {
		// Oversize blocks are never recycled; only the accounting shrinks.
		a.used.Add(-uint64(size))
		return
	}
	class := &a.classes[idx]

	for {
		head := class.freeHead.Load()
		mem.StoreInt64(a.region.Address(offset), int64(head))
		if class.freeHead.CompareAndSwap(head, offset) {
			a.used.Add(-uint64(class.size))
			return
		}
	}
}

func (a *SlabAllocator) Used() uint64      { return a.used.Load() }
func (a *SlabAllocator) Total() uint64     { return a.maxMemory }
func (a *SlabAllocator) Available() uint64 { return a.maxMemory - a.used.Load() }

func (a *SlabAllocator) Close() error {
	if !a.closed.CompareAndSwap(false, true) {
		return nil
	}
	return a.region.Close()
}
