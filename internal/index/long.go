package index

import (
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/iamNilotpal/ignite/internal/seqlock"
)

const (
	slotEmpty int32 = iota
	slotOccupied
	slotTombstone
)

const longLoadFactor = 0.75

// longArrays is one immutable generation of a LongPrimitiveIndex's open
// addressing table. A resize builds a brand-new longArrays and atomically
// swaps it in; readers that already loaded the previous generation keep
// working against it until they reload, so a resize never invalidates an
// in-flight read.
type longArrays struct {
	keys      []int64
	addresses []uint64
	sizes     []int32
	states    []int32
	capacity  int
}

// LongPrimitiveIndex is an open-addressed table specialized for int64 keys,
// avoiding both map bucket overhead and interface boxing. Slot state
// transitions and in-place address/size updates use atomic loads and
// stores so that Get can read optimistically, without a lock, while a
// seqlock.SeqLock still serializes writers and lets Get detect (and retry
// past) a write that ran concurrently with it.
//
// Slot state lives in a separate states array. Keys 0 and math.MinInt64 are
// reserved and rejected before reaching the index (see internal/engine's
// key validation); the index does not reject them itself.
type LongPrimitiveIndex struct {
	log    *zap.SugaredLogger
	lock   seqlock.SeqLock
	arrays atomic.Pointer[longArrays]
	count  atomic.Int64
	closed atomic.Bool
}

// NewLongPrimitive creates a LongPrimitiveIndex with room for at least
// initialCapacity entries before its first resize.
func NewLongPrimitive(log *zap.SugaredLogger, initialCapacity uint32) *LongPrimitiveIndex {
	cap := nextPowerOfTwo(initialCapacity)
	if cap < 16 {
		cap = 16
	}
	idx := &LongPrimitiveIndex{log: log}
	idx.arrays.Store(newLongArrays(int(cap)))
	return idx
}

func newLongArrays(capacity int) *longArrays {
	return &longArrays{
		keys:      make([]int64, capacity),
		addresses: make([]uint64, capacity),
		sizes:     make([]int32, capacity),
		states:    make([]int32, capacity),
		capacity:  capacity,
	}
}

// mixLong is the 64-bit MurmurHash3 finalizer, used to scatter sequential
// or clustered int64 keys evenly across the slot table.
func mixLong(k int64) uint64 {
	h := uint64(k)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// findSlot scans a for key starting at its hashed home slot, returning the
// slot index and whether key was found there. If key is absent, the
// returned slot is the first EMPTY or TOMBSTONE slot on the probe path,
// suitable for insertion.
func findSlot(a *longArrays, key int64) (slot int, found bool) {
	mask := a.capacity - 1
	start := int(mixLong(key)) & mask
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
			if atomic.LoadInt64(&a.keys[s]) == key {
				return s, true
			}
		}
	}
	return firstFree, false
}

func (idx *LongPrimitiveIndex) PutAndGetOld(key int64, entry Entry) (Entry, bool) {
	idx.lock.Lock()
	defer idx.lock.Unlock()

	a := idx.arrays.Load()
	if float64(idx.count.Load()+1) > longLoadFactor*float64(a.capacity) {
		a = idx.resizeLocked(a)
	}

	slot, found := findSlot(a, key)
	if found {
		old := Entry{Address: atomic.LoadUint64(&a.addresses[slot]), Size: atomic.LoadInt32(&a.sizes[slot])}
		atomic.StoreUint64(&a.addresses[slot], entry.Address)
		atomic.StoreInt32(&a.sizes[slot], entry.Size)
		return old, true
	}

	atomic.StoreInt64(&a.keys[slot], key)
	atomic.StoreUint64(&a.addresses[slot], entry.Address)
	atomic.StoreInt32(&a.sizes[slot], entry.Size)
	atomic.StoreInt32(&a.states[slot], slotOccupied)
	idx.count.Add(1)
	return Entry{}, false
}

func (idx *LongPrimitiveIndex) Get(key int64) (Entry, bool) {
	for {
		stamp, ok := idx.lock.TryOptimisticRead()
		if !ok {
			runtime.Gosched()
			continue
		}

		a := idx.arrays.Load()
		slot, found := findSlot(a, key)
		var e Entry
		if found {
			e = Entry{Address: atomic.LoadUint64(&a.addresses[slot]), Size: atomic.LoadInt32(&a.sizes[slot])}
		}

		if idx.lock.Validate(stamp) {
			return e, found
		}
	}
}

func (idx *LongPrimitiveIndex) RemoveAndGetOld(key int64) (Entry, bool) {
	idx.lock.Lock()
	defer idx.lock.Unlock()

	a := idx.arrays.Load()
	slot, found := findSlot(a, key)
	if !found {
		return Entry{}, false
	}

	old := Entry{Address: atomic.LoadUint64(&a.addresses[slot]), Size: atomic.LoadInt32(&a.sizes[slot])}
	atomic.StoreInt32(&a.states[slot], slotTombstone)
	atomic.StoreInt64(&a.keys[slot], 0)
	idx.count.Add(-1)
	return old, true
}

func (idx *LongPrimitiveIndex) resizeLocked(old *longArrays) *longArrays {
	next := newLongArrays(old.capacity * 2)
	for i := 0; i < old.capacity; i++ {
		if atomic.LoadInt32(&old.states[i]) != slotOccupied {
			continue
		}
		key := atomic.LoadInt64(&old.keys[i])
		slot, _ := findSlot(next, key)
		next.keys[slot] = key
		next.addresses[slot] = atomic.LoadUint64(&old.addresses[i])
		next.sizes[slot] = atomic.LoadInt32(&old.sizes[i])
		next.states[slot] = slotOccupied
	}
	idx.arrays.Store(next)
	return next
}

func (idx *LongPrimitiveIndex) ForEach(fn func(key int64, entry Entry) bool) {
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

func (idx *LongPrimitiveIndex) Len() int { return int(idx.count.Load()) }

func (idx *LongPrimitiveIndex) Clear() {
	idx.lock.Lock()
	defer idx.lock.Unlock()
	idx.arrays.Store(newLongArrays(16))
	idx.count.Store(0)
}

func (idx *LongPrimitiveIndex) Close() error {
	if !idx.closed.CompareAndSwap(false, true) {
		return ErrIndexClosed
	}
	idx.lock.Lock()
	defer idx.lock.Unlock()
	idx.arrays.Store(newLongArrays(0))
	if idx.log != nil {
		idx.log.Infow("long primitive index closed")
	}
	return nil
}

var _ Index[int64] = (*LongPrimitiveIndex)(nil)

// nextPowerOfTwo rounds n up to the next power of two, with a floor of 1.
func nextPowerOfTwo(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}
