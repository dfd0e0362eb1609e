package allocator

import (
	"testing"

	"github.com/iamNilotpal/ignite/internal/mem"
	"github.com/iamNilotpal/ignite/pkg/errors"
)

func newTestSlab(t *testing.T, maxMemory uint64) *SlabAllocator {
	t.Helper()
	region, err := mem.NewAnonymous(maxMemory)
	if err != nil {
		t.Fatalf("NewAnonymous: %v", err)
	}
	t.Cleanup(func() { _ = region.Close() })
	return NewSlab(region, maxMemory)
}

func TestSlabAllocatorRoundsToSizeClass(t *testing.T) {
	a := newTestSlab(t, 1<<20)

	off, err := a.Allocate(10)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if a.Used() != 16 {
		t.Fatalf("expected 16-byte class for a 10-byte request, used=%d", a.Used())
	}
	_ = off
}

func TestSlabAllocatorNeverReturnsZero(t *testing.T) {
	a := newTestSlab(t, 1<<20)

	first, err := a.Allocate(10)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if first == 0 {
		t.Fatal("expected the first allocation on a fresh allocator to be non-zero")
	}

	big, err := a.Allocate(32768)
	if err != nil {
		t.Fatalf("Allocate (oversize): %v", err)
	}
	if big == 0 {
		t.Fatal("expected the oversize bump path to never return offset 0 either")
	}
}

func TestSlabAllocatorFreeListReuse(t *testing.T) {
	a := newTestSlab(t, 1<<20)

	first, err := a.Allocate(16)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	a.Free(first, 16)
	if a.Used() != 0 {
		t.Fatalf("expected Used to drop to 0 after Free, got %d", a.Used())
	}

	second, err := a.Allocate(16)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if second != first {
		t.Fatalf("expected freed block %d to be recycled, got new offset %d", first, second)
	}
}

func TestSlabAllocatorOversizePath(t *testing.T) {
	a := newTestSlab(t, 1<<20)

	off, err := a.Allocate(32768)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if a.Used() != 32768 {
		t.Fatalf("oversize allocation should not round up, used=%d", a.Used())
	}
	a.Free(off, 32768)
	if a.Used() != 0 {
		t.Fatalf("expected Used 0 after freeing oversize block, got %d", a.Used())
	}
}

func TestSlabAllocatorOutOfSpace(t *testing.T) {
	a := newTestSlab(t, 4096)

	for i := 0; i < 256; i++ {
		if _, err := a.Allocate(16); err != nil {
			t.Fatalf("Allocate #%d: %v", i, err)
		}
	}

	_, err := a.Allocate(16)
	if err == nil {
		t.Fatal("expected an out-of-space error")
	}
	if !errors.IsAllocatorError(err) {
		t.Fatalf("expected an AllocatorError, got %T", err)
	}
}

func TestSlabAllocatorZeroSizeRejected(t *testing.T) {
	a := newTestSlab(t, 1<<20)
	if _, err := a.Allocate(0); err == nil {
		t.Fatal("expected an error for a zero-byte allocation")
	}
}

func TestSlabAllocatorCloseIsIdempotent(t *testing.T) {
	a := newTestSlab(t, 1<<20)
	if err := a.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got: %v", err)
	}
}
