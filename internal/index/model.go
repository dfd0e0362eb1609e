package index

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// HashIndex is the general-purpose Index: a single sync.RWMutex guarding a
// plain Go map. It is the right default for most key types and workloads —
// SegmentedHashIndex only pays for itself once read contention on a single
// mutex becomes the bottleneck.
type HashIndex[K comparable] struct {
	log     *zap.SugaredLogger
	entries map[K]Entry
	mu      sync.RWMutex
	closed  atomic.Bool
}

// NewHash creates a HashIndex pre-sized for initialCapacity entries.
func NewHash[K comparable](log *zap.SugaredLogger, initialCapacity uint32) *HashIndex[K] {
	return &HashIndex[K]{
		log:     log,
		entries: make(map[K]Entry, initialCapacity),
	}
}

func (idx *HashIndex[K]) PutAndGetOld(key K, entry Entry) (Entry, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	old, existed := idx.entries[key]
	idx.entries[key] = entry
	return old, existed
}

func (idx *HashIndex[K]) Get(key K) (Entry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	e, ok := idx.entries[key]
	return e, ok
}

func (idx *HashIndex[K]) RemoveAndGetOld(key K) (Entry, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	old, existed := idx.entries[key]
	if existed {
		delete(idx.entries, key)
	}
	return old, existed
}

func (idx *HashIndex[K]) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

func (idx *HashIndex[K]) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	clear(idx.entries)
}

func (idx *HashIndex[K]) ForEach(fn func(key K, entry Entry) bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	for k, e := range idx.entries {
		if !fn(k, e) {
			return
		}
	}
}

func (idx *HashIndex[K]) Close() error {
	if !idx.closed.CompareAndSwap(false, true) {
		return ErrIndexClosed
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	clear(idx.entries)
	idx.entries = nil

	if idx.log != nil {
		idx.log.Infow("hash index closed")
	}
	return nil
}

var _ Index[string] = (*HashIndex[string])(nil)
