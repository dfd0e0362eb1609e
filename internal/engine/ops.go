package engine

import (
	"fmt"

	"github.com/iamNilotpal/ignite/internal/index"
	"github.com/iamNilotpal/ignite/pkg/errors"
)

// address resolves a region-relative, payload-area-relative offset (as
// returned by the allocator and stored in an index.Entry) into a process
// address inside the storage layer's mem.Region.
func (e *Engine[K, V]) address(offset uint64) uintptr {
	return e.storage.Region().Address(e.storage.PayloadOffset() + offset)
}

// Put stores value under key, replacing whatever value (if any) previously
// occupied it, and returns that previous value.
//
// The new value is encoded into a freshly allocated region of the payload
// area before the index is updated, and the index swap (PutAndGetOld) is a
// single atomic step — so a concurrent Get can only ever observe key mapped
// to the fully-encoded old value or the fully-encoded new one, never a
// half-written value or a key briefly missing from the index. The old
// entry's bytes are decoded into a V before the allocator is told to free
// them: freeing happens first in the allocator's own bookkeeping
// (SlabAllocator writes its free-list "next" pointer into the freed block's
// first bytes), so decoding after Free could read a value that is no longer
// there.
func (e *Engine[K, V]) Put(key K, value V) (V, bool, error) {
	var zero V
	if e.closed.Load() {
		return zero, false, ErrEngineClosed
	}
	if err := e.validateKey(key); err != nil {
		return zero, false, err
	}

	size := e.valueCodec.SizeOf(value)
	if size < 0 {
		return zero, false, errors.NewNegativeSizeError(fmt.Sprint(key), size)
	}

	offset, err := e.allocator.Allocate(uint32(size))
	if err != nil {
		return zero, false, err
	}

	addr := e.address(offset)
	wrote, err := e.valueCodec.Encode(addr, value)
	if err != nil {
		e.allocator.Free(offset, uint32(size))
		return zero, false, err
	}
	if wrote != size {
		e.allocator.Free(offset, uint32(size))
		return zero, false, errors.NewShortWriteError(fmt.Sprint(key), uint64(addr), size, wrote)
	}

	old, existed := e.index.PutAndGetOld(key, index.Entry{Address: offset, Size: size})
	if !existed {
		return zero, false, nil
	}

	oldValue := e.valueCodec.Decode(e.address(old.Address), old.Size)
	e.allocator.Free(old.Address, uint32(old.Size))
	return oldValue, true, nil
}

// Get returns the value stored for key, if any.
func (e *Engine[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if e.closed.Load() {
		return zero, false, ErrEngineClosed
	}

	entry, ok := e.index.Get(key)
	if !ok {
		return zero, false, nil
	}
	return e.valueCodec.Decode(e.address(entry.Address), entry.Size), true, nil
}

// Remove deletes key and returns the value it held, if any.
//
// The removed entry's bytes are decoded into a V before the allocator is
// told to free them: freeing happens first in the allocator's own
// bookkeeping (SlabAllocator writes its free-list "next" pointer into the
// freed block's first bytes), so decoding after Free could read a value
// that is no longer there. RemoveAndGetOld already made the key's removal
// from the index atomic; this just keeps the engine from reading through a
// dangling address on top of that.
func (e *Engine[K, V]) Remove(key K) (V, bool, error) {
	var zero V
	if e.closed.Load() {
		return zero, false, ErrEngineClosed
	}

	old, existed := e.index.RemoveAndGetOld(key)
	if !existed {
		return zero, false, nil
	}

	value := e.valueCodec.Decode(e.address(old.Address), old.Size)
	e.allocator.Free(old.Address, uint32(old.Size))
	return value, true, nil
}

// ContainsKey reports whether key currently has a value, without decoding it.
func (e *Engine[K, V]) ContainsKey(key K) (bool, error) {
	if e.closed.Load() {
		return false, ErrEngineClosed
	}
	_, ok := e.index.Get(key)
	return ok, nil
}

// Size reports the number of keys currently stored.
func (e *Engine[K, V]) Size() (int, error) {
	if e.closed.Load() {
		return 0, ErrEngineClosed
	}
	return e.index.Len(), nil
}

// IsEmpty reports whether the store currently holds no keys.
func (e *Engine[K, V]) IsEmpty() (bool, error) {
	size, err := e.Size()
	if err != nil {
		return false, err
	}
	return size == 0, nil
}

// Clear removes every key, returning each entry's bytes to the allocator.
func (e *Engine[K, V]) Clear() error {
	if e.closed.Load() {
		return ErrEngineClosed
	}

	var freed []index.Entry
	e.index.ForEach(func(_ K, entry index.Entry) bool {
		freed = append(freed, entry)
		return true
	})

	e.index.Clear()
	for _, entry := range freed {
		e.allocator.Free(entry.Address, uint32(entry.Size))
	}
	return nil
}
