package index

import "testing"

func TestLongPrimitiveIndexPutGetRemove(t *testing.T) {
	idx := NewLongPrimitive(nil, 8)

	old, existed := idx.PutAndGetOld(42, Entry{Address: 1000, Size: 16})
	if existed {
		t.Fatalf("expected no prior entry, got %+v", old)
	}

	got, ok := idx.Get(42)
	if !ok || got.Address != 1000 {
		t.Fatalf("expected entry for key 42, got %+v ok=%v", got, ok)
	}

	old, existed = idx.PutAndGetOld(42, Entry{Address: 2000, Size: 32})
	if !existed || old.Address != 1000 {
		t.Fatalf("expected old entry {1000,16}, got %+v existed=%v", old, existed)
	}

	removed, existed := idx.RemoveAndGetOld(42)
	if !existed || removed.Address != 2000 {
		t.Fatalf("expected removed entry {2000,32}, got %+v", removed)
	}
	if _, ok := idx.Get(42); ok {
		t.Fatal("expected key 42 to be gone after removal")
	}
}

func TestLongPrimitiveIndexTriggersResize(t *testing.T) {
	idx := NewLongPrimitive(nil, 8)
	const n = 500
	for i := int64(1); i <= n; i++ {
		idx.PutAndGetOld(i, Entry{Address: uint64(i), Size: int32(i)})
	}
	if idx.Len() != n {
		t.Fatalf("expected Len %d, got %d", n, idx.Len())
	}
	for i := int64(1); i <= n; i++ {
		got, ok := idx.Get(i)
		if !ok || got.Address != uint64(i) {
			t.Fatalf("key %d: expected address %d, got %+v ok=%v", i, i, got, ok)
		}
	}
}

func TestLongPrimitiveIndexForEachAndClear(t *testing.T) {
	idx := NewLongPrimitive(nil, 8)
	idx.PutAndGetOld(1, Entry{Address: 1})
	idx.PutAndGetOld(2, Entry{Address: 2})

	count := 0
	idx.ForEach(func(k int64, e Entry) bool {
		count++
		return true
	})
	if count != 2 {
		t.Fatalf("expected 2 entries, got %d", count)
	}

	idx.Clear()
	if idx.Len() != 0 {
		t.Fatalf("expected Len 0 after Clear, got %d", idx.Len())
	}
}

func TestIntPrimitiveIndexPutGetRemove(t *testing.T) {
	idx := NewIntPrimitive(nil, 8)

	idx.PutAndGetOld(7, Entry{Address: 70, Size: 7})
	got, ok := idx.Get(7)
	if !ok || got.Address != 70 {
		t.Fatalf("expected entry for key 7, got %+v ok=%v", got, ok)
	}

	removed, existed := idx.RemoveAndGetOld(7)
	if !existed || removed.Address != 70 {
		t.Fatalf("expected removed entry, got %+v", removed)
	}
	if _, ok := idx.Get(7); ok {
		t.Fatal("expected key 7 to be gone")
	}
}

func TestIntPrimitiveIndexTriggersResize(t *testing.T) {
	idx := NewIntPrimitive(nil, 8)
	const n = 300
	for i := int32(1); i <= n; i++ {
		idx.PutAndGetOld(i, Entry{Address: uint64(i)})
	}
	if idx.Len() != n {
		t.Fatalf("expected Len %d, got %d", n, idx.Len())
	}
	for i := int32(1); i <= n; i++ {
		if got, ok := idx.Get(i); !ok || got.Address != uint64(i) {
			t.Fatalf("key %d: got %+v ok=%v", i, got, ok)
		}
	}
}
