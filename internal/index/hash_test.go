package index

import "testing"

func TestHashIndexPutAndGetOld(t *testing.T) {
	idx := NewHash[string](nil, 4)

	old, existed := idx.PutAndGetOld("a", Entry{Address: 10, Size: 4})
	if existed {
		t.Fatalf("expected no prior entry, got %+v", old)
	}

	old, existed = idx.PutAndGetOld("a", Entry{Address: 20, Size: 8})
	if !existed || old.Address != 10 || old.Size != 4 {
		t.Fatalf("expected old entry {10,4}, got existed=%v old=%+v", existed, old)
	}

	got, ok := idx.Get("a")
	if !ok || got.Address != 20 || got.Size != 8 {
		t.Fatalf("expected {20,8}, got %+v ok=%v", got, ok)
	}
}

func TestHashIndexRemoveAndGetOld(t *testing.T) {
	idx := NewHash[string](nil, 4)
	idx.PutAndGetOld("k", Entry{Address: 1, Size: 1})

	old, existed := idx.RemoveAndGetOld("k")
	if !existed || old.Address != 1 {
		t.Fatalf("expected removed entry, got %+v existed=%v", old, existed)
	}

	if _, existed := idx.RemoveAndGetOld("k"); existed {
		t.Fatal("expected second remove to report no entry")
	}
	if _, ok := idx.Get("k"); ok {
		t.Fatal("expected key to be gone after removal")
	}
}

func TestHashIndexLenAndClear(t *testing.T) {
	idx := NewHash[string](nil, 4)
	idx.PutAndGetOld("a", Entry{Address: 1})
	idx.PutAndGetOld("b", Entry{Address: 2})
	if idx.Len() != 2 {
		t.Fatalf("expected Len 2, got %d", idx.Len())
	}
	idx.Clear()
	if idx.Len() != 0 {
		t.Fatalf("expected Len 0 after Clear, got %d", idx.Len())
	}
}

func TestHashIndexForEach(t *testing.T) {
	idx := NewHash[string](nil, 4)
	idx.PutAndGetOld("a", Entry{Address: 1})
	idx.PutAndGetOld("b", Entry{Address: 2})

	seen := map[string]Entry{}
	idx.ForEach(func(k string, e Entry) bool {
		seen[k] = e
		return true
	})
	if len(seen) != 2 {
		t.Fatalf("expected 2 entries visited, got %d", len(seen))
	}
}

func TestHashIndexCloseRejectsReuse(t *testing.T) {
	idx := NewHash[string](nil, 4)
	if err := idx.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := idx.Close(); err != ErrIndexClosed {
		t.Fatalf("expected ErrIndexClosed on second Close, got %v", err)
	}
}
