package index

import (
	"testing"

	"github.com/iamNilotpal/ignite/internal/codec"
)

func TestSegmentedHashIndexPutGetRemove(t *testing.T) {
	idx := NewSegmented[int64](nil, codec.Int64{}, 8, 16)

	idx.PutAndGetOld(1, Entry{Address: 100, Size: 4})
	idx.PutAndGetOld(2, Entry{Address: 200, Size: 8})

	got, ok := idx.Get(1)
	if !ok || got.Address != 100 {
		t.Fatalf("expected entry for key 1, got %+v ok=%v", got, ok)
	}

	old, existed := idx.RemoveAndGetOld(2)
	if !existed || old.Address != 200 {
		t.Fatalf("expected removed entry for key 2, got %+v", old)
	}
	if _, ok := idx.Get(2); ok {
		t.Fatal("expected key 2 to be gone")
	}
	if idx.Len() != 1 {
		t.Fatalf("expected Len 1, got %d", idx.Len())
	}
}

func TestSegmentedHashIndexDistributesAcrossShards(t *testing.T) {
	idx := NewSegmented[int64](nil, codec.Int64{}, 16, 64)
	for i := int64(0); i < 200; i++ {
		idx.PutAndGetOld(i, Entry{Address: uint64(i)})
	}
	if idx.Len() != 200 {
		t.Fatalf("expected Len 200, got %d", idx.Len())
	}

	count := 0
	idx.ForEach(func(k int64, e Entry) bool {
		count++
		return true
	})
	if count != 200 {
		t.Fatalf("expected ForEach to visit 200 entries, got %d", count)
	}
}

func TestSegmentedHashIndexClose(t *testing.T) {
	idx := NewSegmented[int64](nil, codec.Int64{}, 4, 4)
	idx.PutAndGetOld(1, Entry{Address: 1})
	if err := idx.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := idx.Close(); err != ErrIndexClosed {
		t.Fatalf("expected ErrIndexClosed, got %v", err)
	}
}
