package allocator

import "testing"

func TestMmapAllocatorBumpsMonotonically(t *testing.T) {
	a := NewMmap(1 << 20)

	first, err := a.Allocate(100)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if first != reservedOffset {
		t.Fatalf("expected first allocation at offset %d, got %d", uint64(reservedOffset), first)
	}

	second, err := a.Allocate(200)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if second != reservedOffset+100 {
		t.Fatalf("expected second allocation at offset %d, got %d", uint64(reservedOffset+100), second)
	}
	if a.CurrentOffset() != reservedOffset+300 {
		t.Fatalf("expected current offset %d, got %d", uint64(reservedOffset+300), a.CurrentOffset())
	}
}

func TestMmapAllocatorNeverReturnsZero(t *testing.T) {
	a := NewMmap(1 << 20)
	first, err := a.Allocate(10)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if first == 0 {
		t.Fatal("expected the first allocation on a fresh allocator to be non-zero")
	}
}

func TestMmapAllocatorFreeIsNoop(t *testing.T) {
	a := NewMmap(1 << 20)
	off, _ := a.Allocate(64)
	before := a.Used()
	a.Free(off, 64)
	if a.Used() != before {
		t.Fatalf("expected Free to be a no-op, used went from %d to %d", before, a.Used())
	}
}

func TestMmapAllocatorOutOfSpace(t *testing.T) {
	a := NewMmap(100)
	if _, err := a.Allocate(50); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if _, err := a.Allocate(51); err == nil {
		t.Fatal("expected an out-of-space error")
	}
}

func TestRestoreMmapResumesOffset(t *testing.T) {
	a := RestoreMmap(1<<20, 500)
	if a.CurrentOffset() != 500 {
		t.Fatalf("expected restored offset 500, got %d", a.CurrentOffset())
	}
	off, err := a.Allocate(10)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if off != 500 {
		t.Fatalf("expected allocation to continue from restored offset, got %d", off)
	}
}
