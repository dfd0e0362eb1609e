package index

import (
	"math"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/iamNilotpal/ignite/internal/seqlock"
)

const intLoadFactor = 0.75

// intArrays is one immutable generation of an IntPrimitiveIndex's open
// addressing table; see longArrays for the swap-on-resize rationale.
type intArrays struct {
	keys      []int32
	addresses []uint64
	sizes     []int32
	states    []int32
	capacity  int
}

// IntPrimitiveIndex is LongPrimitiveIndex's int32-keyed counterpart:
// open-addressed, lock-free optimistic reads via a shared seqlock, writers
// serialized through the same lock. Slot state lives in a separate states
// array; keys 0 and math.MinInt32 are reserved and rejected by the engine's
// key validation before they reach the index, which does not reject them
// itself.
type IntPrimitiveIndex struct {
	log    *zap.SugaredLogger
	lock   seqlock.SeqLock
	arrays atomic.Pointer[intArrays]
	count  atomic.Int64
	closed atomic.Bool
}

// NewIntPrimitive creates an IntPrimitiveIndex with room for at least
// initialCapacity entries before its first resize.
func NewIntPrimitive(log *zap.SugaredLogger, initialCapacity uint32) *IntPrimitiveIndex {
	cap := nextPowerOfTwo(initialCapacity)
	if cap < 16 {
		cap = 16
	}
	idx := &IntPrimitiveIndex{log: log}
	idx.arrays.Store(newIntArrays(int(cap)))
	return idx
}

func newIntArrays(capacity int) *intArrays {
	return &intArrays{
		keys:      make([]int32, capacity),
		addresses: make([]uint64, capacity),
		sizes:     make([]int32, capacity),
		states:    make([]int32, capacity),
		capacity:  capacity,
	}
}

// mixInt is a 32-bit avalanche mix (the finalizer from Murmur3's 32-bit
// variant), spreading sequential or clustered int32 keys across the table.
func mixInt(k int32) uint32 {
	h := uint32(k)
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func findIntSlot(a *intArrays, key int32) (slot int, found bool) {
	mask := a.capacity - 1
	start := int(mixInt(key)) & mask
	firstFree := -1

	for i := 0; i < a.capacity; i++ {
		s := int(start+i) & mask
		state := atomic.LoadInt32(&a.states[s])

		switch state {
		case slotEmpty:
			if firstFree == -1 {
				firstFree = s
			}
			return firstFree, false
		case slotTombstone:
			if firstFree == -1 {
				firstFree = s
			}
		case slotOccupied:
			if atomic.LoadInt32(&a.keys[s]) == key {
				return s, true
			}
		}
	}
	return firstFree, false
}

func (idx *IntPrimitiveIndex) PutAndGetOld(key int32, entry Entry) (Entry, bool) {
	idx.lock.Lock()
	defer idx.lock.Unlock()

	a := idx.arrays.Load()
	if float64(idx.count.Load()+1) > intLoadFactor*float64(a.capacity) {
		a = idx.resizeLocked(a)
	}

	slot, found := findIntSlot(a, key)
	if found {
		old := Entry{Address: atomic.LoadUint64(&a.addresses[slot]), Size: atomic.LoadInt32(&a.sizes[slot])}
		atomic.StoreUint64(&a.addresses[slot], entry.Address)
		atomic.StoreInt32(&a.sizes[slot], entry.Size)
		return old, true
	}

	atomic.StoreInt32(&a.keys[slot], key)
	atomic.StoreUint64(&a.addresses[slot], entry.Address)
	atomic.StoreInt32(&a.sizes[slot], entry.Size)
	atomic.StoreInt32(&a.states[slot], slotOccupied)
	idx.count.Add(1)
	return Entry{}, false
}

func (idx *IntPrimitiveIndex) Get(key int32) (Entry, bool) {
	for {
		stamp, ok := idx.lock.TryOptimisticRead()
		if !ok {
			runtime.Gosched()
			continue
		}

		a := idx.arrays.Load()
		slot, found := findIntSlot(a, key)
		var e Entry
		if found {
			e = Entry{Address: atomic.LoadUint64(&a.addresses[slot]), Size: atomic.LoadInt32(&a.sizes[slot])}
		}

		if idx.lock.Validate(stamp) {
			return e, found
		}
	}
}

func (idx *IntPrimitiveIndex) RemoveAndGetOld(key int32) (Entry, bool) {
	idx.lock.Lock()
	defer idx.lock.Unlock()

	a := idx.arrays.Load()
	slot, found := findIntSlot(a, key)
	if !found {
		return Entry{}, false
	}

	old := Entry{Address: atomic.LoadUint64(&a.addresses[slot]), Size: atomic.LoadInt32(&a.sizes[slot])}
	atomic.StoreInt32(&a.states[slot], slotTombstone)
	atomic.StoreInt32(&a.keys[slot], math.MinInt32)
	idx.count.Add(-1)
	return old, true
}

func (idx *IntPrimitiveIndex) resizeLocked(old *intArrays) *intArrays {
	next := newIntArrays(old.capacity * 2)
	for i := 0; i < old.capacity; i++ {
		if atomic.LoadInt32(&old.states[i]) != slotOccupied {
			continue
		}
		key := atomic.LoadInt32(&old.keys[i])
		slot, _ := findIntSlot(next, key)
		next.keys[slot] = key
		next.addresses[slot] = atomic.LoadUint64(&old.addresses[i])
		next.sizes[slot] = atomic.LoadInt32(&old.sizes[i])
		next.states[slot] = slotOccupied
	}
	idx.arrays.Store(next)
	return next
}

func (idx *IntPrimitiveIndex) ForEach(fn func(key int32, entry Entry) bool) {
	idx.lock.Lock()
	defer idx.lock.Unlock()
	a := idx.arrays.Load()
	for i := 0; i < a.capacity; i++ {
		if a.states[i] != slotOccupied {
			continue
		}
		e := Entry{Address: a.addresses[i], Size: a.sizes[i]}
		if !fn(a.keys[i], e) {
			return
		}
	}
}

func (idx *IntPrimitiveIndex) Len() int { return int(idx.count.Load()) }

func (idx *IntPrimitiveIndex) Clear() {
	idx.lock.Lock()
	defer idx.lock.Unlock()
	idx.arrays.Store(newIntArrays(16))
	idx.count.Store(0)
}

func (idx *IntPrimitiveIndex) Close() error {
	if !idx.closed.CompareAndSwap(false, true) {
		return ErrIndexClosed
	}
	idx.lock.Lock()
	defer idx.lock.Unlock()
	idx.arrays.Store(newIntArrays(0))
	if idx.log != nil {
		idx.log.Infow("int primitive index closed")
	}
	return nil
}

var _ Index[int32] = (*IntPrimitiveIndex)(nil)
